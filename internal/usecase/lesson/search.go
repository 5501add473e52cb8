package lesson

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Lukas18007/dyschool/internal/domain/catalog"
	"github.com/Lukas18007/dyschool/internal/domain/teacher"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/models"
)

const (
	MinLessonDuration = 30
	MaxLessonDuration = 180
)

// SearchInput holds the optional search filters. Nil means "not supplied".
type SearchInput struct {
	SpecializationID *uint
	LessonTopicID    *uint
	MaxHourlyRate    *float64
	LessonDuration   *int
}

type SearchTeachers struct {
	teachers teacher.Repository
	catalog  catalog.Repository
}

func NewSearchTeachers(teachers teacher.Repository, catalog catalog.Repository) *SearchTeachers {
	return &SearchTeachers{teachers: teachers, catalog: catalog}
}

// Execute returns the users behind every available profile matching all
// supplied filters. The duration is validated but never filters.
func (uc *SearchTeachers) Execute(ctx context.Context, in SearchInput) ([]models.User, error) {
	fields := map[string]string{}

	if in.SpecializationID != nil {
		specs, err := uc.catalog.FindSpecializations(ctx, []uint{*in.SpecializationID})
		if err != nil {
			return nil, err
		}
		if len(specs) == 0 {
			fields["specialization"] = "Select a valid choice."
		}
	}

	if in.LessonTopicID != nil {
		topic, err := uc.catalog.GetTopic(ctx, *in.LessonTopicID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			fields["lesson_topic"] = "Select a valid choice."
		case err != nil:
			return nil, err
		case in.SpecializationID != nil && topic.SpecializationID != *in.SpecializationID:
			fields["lesson_topic"] = "Select a valid choice. That topic does not belong to the chosen specialization."
		}
	}

	if in.MaxHourlyRate != nil && *in.MaxHourlyRate < 0 {
		fields["max_hourly_rate"] = "Ensure this value is greater than or equal to 0."
	}
	if in.LessonDuration != nil && (*in.LessonDuration < MinLessonDuration || *in.LessonDuration > MaxLessonDuration) {
		fields["lesson_duration"] = "Ensure this value is between 30 and 180."
	}

	if len(fields) > 0 {
		return nil, httperr.InvalidFields(fields)
	}

	profiles, err := uc.teachers.SearchAvailable(ctx, teacher.SearchFilter{
		SpecializationID: in.SpecializationID,
		LessonTopicID:    in.LessonTopicID,
		MaxHourlyRate:    in.MaxHourlyRate,
	})
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(profiles))
	for _, p := range profiles {
		users = append(users, p.User)
	}
	return users, nil
}
