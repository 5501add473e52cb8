package teacher

import (
	"context"

	"github.com/Lukas18007/dyschool/internal/models"
)

// SearchFilter narrows available teachers. Nil fields are not applied.
type SearchFilter struct {
	SpecializationID *uint
	LessonTopicID    *uint
	MaxHourlyRate    *float64
}

type Repository interface {
	GetTeacher(ctx context.Context, userID uint) (*models.User, error)

	GetProfileByUser(ctx context.Context, userID uint) (*models.TeacherProfile, error)

	// SaveProfile writes the scalar columns, then replaces both associations.
	SaveProfile(
		ctx context.Context,
		profile *models.TeacherProfile,
		specializations []models.Specialization,
		topics []models.LessonTopic,
	) error

	SearchAvailable(ctx context.Context, f SearchFilter) ([]models.TeacherProfile, error)
}
