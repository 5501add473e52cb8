package catalog

import (
	"context"

	domain "github.com/Lukas18007/dyschool/internal/domain/catalog"
	"github.com/Lukas18007/dyschool/internal/models"
)

type ListSpecializations struct {
	repo domain.Repository
}

func NewListSpecializations(repo domain.Repository) *ListSpecializations {
	return &ListSpecializations{repo: repo}
}

func (uc *ListSpecializations) Execute(ctx context.Context) ([]models.Specialization, error) {
	return uc.repo.ListSpecializations(ctx)
}

// ListTopics backs the dependent topic dropdown. A missing specialization
// yields an empty list, never an error.
type ListTopics struct {
	repo domain.Repository
}

func NewListTopics(repo domain.Repository) *ListTopics {
	return &ListTopics{repo: repo}
}

func (uc *ListTopics) Execute(ctx context.Context, specializationID uint) ([]models.LessonTopic, error) {
	if specializationID == 0 {
		return []models.LessonTopic{}, nil
	}
	return uc.repo.ListTopicsBySpecialization(ctx, specializationID)
}
