package teacher

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/Lukas18007/dyschool/internal/domain/teacher"
	"github.com/Lukas18007/dyschool/internal/models"
)

type GetProfile struct {
	repo domain.Repository
}

func NewGetProfile(repo domain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

// Execute returns nil without error when the teacher has not created a profile yet.
func (uc *GetProfile) Execute(ctx context.Context, userID uint) (*models.TeacherProfile, error) {
	profile, err := uc.repo.GetProfileByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return profile, err
}
