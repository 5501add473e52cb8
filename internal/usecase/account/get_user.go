package account

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/Lukas18007/dyschool/internal/domain/account"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/models"
)

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(ctx context.Context, id uint) (*models.User, error) {
	user, err := uc.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("user_not_found", "User not found.")
		}
		return nil, err
	}
	return user, nil
}
