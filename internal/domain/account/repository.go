package account

import (
	"context"

	"github.com/Lukas18007/dyschool/internal/models"
)

type Repository interface {
	CreateUser(ctx context.Context, u *models.User) error

	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}
