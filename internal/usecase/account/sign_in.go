package account

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "github.com/Lukas18007/dyschool/internal/domain/account"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/models"
)

var errInvalidCredentials = httperr.Unauthorized("invalid_credentials", "Invalid username or password.")

type SignIn struct {
	repo domain.Repository
}

func NewSignIn(repo domain.Repository) *SignIn {
	return &SignIn{repo: repo}
}

// Execute never tells an unknown username apart from a wrong password.
func (uc *SignIn) Execute(
	ctx context.Context,
	username string,
	password string,
) (*models.User, error) {

	user, err := uc.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, errInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}

	return user, nil
}
