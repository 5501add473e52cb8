package teacher

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Lukas18007/dyschool/internal/audit"
	"github.com/Lukas18007/dyschool/internal/domain/lesson"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/models"
	"github.com/Lukas18007/dyschool/internal/timezone"
)

const (
	MinLessonDuration = 30
	MaxLessonDuration = 180
)

// ======================================================
// INPUT
// ======================================================

type SubmitAvailabilityInput struct {
	TeacherID       uint
	LessonRequestID uint

	AvailableDate string // YYYY-MM-DD
	AvailableTime string // HH:MM
	Duration      int
}

// ======================================================
// USE CASE
// ======================================================

// SubmitAvailability lets any teacher propose a slot for any existing request.
// Whether the teacher covers the topic only matters on the dashboard.
type SubmitAvailability struct {
	repo  lesson.Repository
	clock *timezone.Clock
	audit *audit.Dispatcher
}

func NewSubmitAvailability(
	repo lesson.Repository,
	clock *timezone.Clock,
	audit *audit.Dispatcher,
) *SubmitAvailability {
	return &SubmitAvailability{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitAvailability) Execute(
	ctx context.Context,
	in SubmitAvailabilityInput,
) (*models.TeacherAvailability, error) {

	// --------------------------------------------------
	// 1. Pedido
	// --------------------------------------------------
	req, err := uc.repo.GetRequest(ctx, in.LessonRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("lesson_request_not_found", "Lesson request not found.")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 2. Data / hora / duração
	// --------------------------------------------------
	fields := map[string]string{}

	date, err := time.Parse("2006-01-02", in.AvailableDate)
	if err != nil {
		fields["available_date"] = "Enter a valid date."
	} else if date.Before(uc.clock.Today()) {
		fields["available_date"] = "Available date cannot be in the past."
	}

	clock, err := time.Parse("15:04", in.AvailableTime)
	if err != nil {
		fields["available_time"] = "Enter a valid time."
	}

	if in.Duration < MinLessonDuration || in.Duration > MaxLessonDuration {
		fields["duration"] = "Ensure this value is between 30 and 180."
	}

	if len(fields) > 0 {
		return nil, httperr.InvalidFields(fields)
	}

	// --------------------------------------------------
	// 3. Criação
	// --------------------------------------------------
	a := &models.TeacherAvailability{
		TeacherID:       in.TeacherID,
		LessonRequestID: req.ID,
		AvailableDate:   datatypes.Date(date),
		AvailableTime:   datatypes.NewTime(clock.Hour(), clock.Minute(), 0, 0),
		Duration:        in.Duration,
	}

	if err := uc.repo.CreateAvailability(ctx, a); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.Conflict(
				"duplicate_availability",
				"You have already proposed this date and time for this request.",
			)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.TeacherID,
		Action:   audit.ActionAvailabilitySubmitted,
		Entity:   "teacher_availability",
		EntityID: &a.ID,
		Metadata: map[string]any{"lesson_request_id": req.ID},
	})

	return a, nil
}
