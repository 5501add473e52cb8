package catalog

import (
	"context"

	"github.com/Lukas18007/dyschool/internal/models"
)

type Repository interface {
	// -------- Reads --------
	ListSpecializations(ctx context.Context) ([]models.Specialization, error)
	ListTopicsBySpecialization(ctx context.Context, specializationID uint) ([]models.LessonTopic, error)
	GetTopic(ctx context.Context, id uint) (*models.LessonTopic, error)
	FindSpecializations(ctx context.Context, ids []uint) ([]models.Specialization, error)
	FindTopics(ctx context.Context, ids []uint) ([]models.LessonTopic, error)

	// ListTopicsWithTeachers returns topics declared by at least one teacher profile.
	ListTopicsWithTeachers(ctx context.Context) ([]models.LessonTopic, error)

	// -------- Seed --------
	GetOrCreateSpecialization(ctx context.Context, name, description string) (*models.Specialization, bool, error)
	GetOrCreateTopic(ctx context.Context, specializationID uint, name, description string) (*models.LessonTopic, bool, error)
}
