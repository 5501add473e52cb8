package teacher

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Lukas18007/dyschool/internal/domain/lesson"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/models"
)

// GetLessonRequest loads the request a teacher is about to answer.
type GetLessonRequest struct {
	repo lesson.Repository
}

func NewGetLessonRequest(repo lesson.Repository) *GetLessonRequest {
	return &GetLessonRequest{repo: repo}
}

func (uc *GetLessonRequest) Execute(ctx context.Context, id uint) (*models.LessonRequest, error) {
	req, err := uc.repo.GetRequest(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("lesson_request_not_found", "Lesson request not found.")
		}
		return nil, err
	}
	return req, nil
}
