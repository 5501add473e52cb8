package lesson

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Lukas18007/dyschool/internal/audit"
	"github.com/Lukas18007/dyschool/internal/domain/catalog"
	domain "github.com/Lukas18007/dyschool/internal/domain/lesson"
	"github.com/Lukas18007/dyschool/internal/domain/teacher"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/models"
)

// numeric(8,2)
const maxHourlyRate = 999999.99

var errTeacherNotFound = httperr.NotFound("teacher_not_found", "Teacher not found.")

// ======================================================
// FORM
// ======================================================

type RequestForm struct {
	Teacher      *models.User
	LessonTopics []models.LessonTopic
}

// GetRequestForm returns the teacher being addressed and the topics a
// request may name: those at least one teacher has declared.
type GetRequestForm struct {
	teachers teacher.Repository
	catalog  catalog.Repository
}

func NewGetRequestForm(teachers teacher.Repository, catalog catalog.Repository) *GetRequestForm {
	return &GetRequestForm{teachers: teachers, catalog: catalog}
}

func (uc *GetRequestForm) Execute(ctx context.Context, teacherID uint) (*RequestForm, error) {
	t, err := uc.teachers.GetTeacher(ctx, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errTeacherNotFound
		}
		return nil, err
	}

	topics, err := uc.catalog.ListTopicsWithTeachers(ctx)
	if err != nil {
		return nil, err
	}

	return &RequestForm{Teacher: t, LessonTopics: topics}, nil
}

// ======================================================
// CREATE
// ======================================================

type CreateRequestInput struct {
	StudentID uint
	TeacherID uint

	LessonTopicID   uint
	LessonDuration  int
	MaxHourlyRate   float64
	AdditionalNotes string
}

type CreateRequest struct {
	repo     domain.Repository
	teachers teacher.Repository
	catalog  catalog.Repository
	audit    *audit.Dispatcher
}

func NewCreateRequest(
	repo domain.Repository,
	teachers teacher.Repository,
	catalog catalog.Repository,
	audit *audit.Dispatcher,
) *CreateRequest {
	return &CreateRequest{
		repo:     repo,
		teachers: teachers,
		catalog:  catalog,
		audit:    audit,
	}
}

// Execute stores a pending request. The addressed teacher only scopes the
// page; the request itself is open to every teacher covering the topic.
func (uc *CreateRequest) Execute(
	ctx context.Context,
	in CreateRequestInput,
) (*models.LessonRequest, *models.User, error) {

	// --------------------------------------------------
	// 1. Professor
	// --------------------------------------------------
	t, err := uc.teachers.GetTeacher(ctx, in.TeacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errTeacherNotFound
		}
		return nil, nil, err
	}

	// --------------------------------------------------
	// 2. Campos
	// --------------------------------------------------
	fields := map[string]string{}

	offered, err := uc.catalog.ListTopicsWithTeachers(ctx)
	if err != nil {
		return nil, nil, err
	}
	found := false
	for _, topic := range offered {
		if topic.ID == in.LessonTopicID {
			found = true
			break
		}
	}
	if !found {
		fields["lesson_topic"] = "Select a valid choice. That choice is not one of the available choices."
	}

	if in.LessonDuration < MinLessonDuration || in.LessonDuration > MaxLessonDuration {
		fields["lesson_duration"] = "Ensure this value is between 30 and 180."
	}
	if in.MaxHourlyRate < 0 || in.MaxHourlyRate > maxHourlyRate {
		fields["max_hourly_rate"] = "Ensure this value is between 0 and 999999.99."
	}

	if len(fields) > 0 {
		return nil, nil, httperr.InvalidFields(fields)
	}

	// --------------------------------------------------
	// 3. Criação
	// --------------------------------------------------
	req := &models.LessonRequest{
		StudentID:       in.StudentID,
		LessonTopicID:   in.LessonTopicID,
		LessonDuration:  in.LessonDuration,
		MaxHourlyRate:   in.MaxHourlyRate,
		AdditionalNotes: strings.TrimSpace(in.AdditionalNotes),
		Status:          string(domain.InitialRequestStatus()),
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.StudentID,
		Action:   audit.ActionLessonRequestCreated,
		Entity:   "lesson_request",
		EntityID: &req.ID,
		Metadata: map[string]any{
			"teacher_id":      in.TeacherID,
			"lesson_topic_id": in.LessonTopicID,
		},
	})

	return req, t, nil
}
