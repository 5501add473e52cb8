package teacher

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Lukas18007/dyschool/internal/audit"
	"github.com/Lukas18007/dyschool/internal/domain/catalog"
	domain "github.com/Lukas18007/dyschool/internal/domain/teacher"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/models"
)

// numeric(8,2)
const maxHourlyRate = 999999.99

// ======================================================
// INPUT
// ======================================================

type SaveProfileInput struct {
	UserID uint

	SpecializationIDs []uint
	LessonTopicIDs    []uint

	HourlyRate      float64
	ExperienceYears int
	About           string
	IsAvailable     *bool
}

// ======================================================
// USE CASE
// ======================================================

// SaveProfile creates the teacher's profile on first submit and edits it afterwards.
type SaveProfile struct {
	repo    domain.Repository
	catalog catalog.Repository
	audit   *audit.Dispatcher
}

func NewSaveProfile(
	repo domain.Repository,
	catalog catalog.Repository,
	audit *audit.Dispatcher,
) *SaveProfile {
	return &SaveProfile{
		repo:    repo,
		catalog: catalog,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SaveProfile) Execute(
	ctx context.Context,
	in SaveProfileInput,
) (*models.TeacherProfile, error) {

	// --------------------------------------------------
	// 1. Campos escalares
	// --------------------------------------------------
	fields := map[string]string{}

	about := strings.TrimSpace(in.About)
	if about == "" {
		fields["about"] = "This field is required."
	}
	if in.HourlyRate < 0 || in.HourlyRate > maxHourlyRate {
		fields["hourly_rate"] = "Ensure this value is between 0 and 999999.99."
	}
	if in.ExperienceYears < 0 {
		fields["experience_years"] = "Ensure this value is greater than or equal to 0."
	}

	// --------------------------------------------------
	// 2. Especializações e tópicos
	// --------------------------------------------------
	specIDs := dedupe(in.SpecializationIDs)
	topicIDs := dedupe(in.LessonTopicIDs)

	specs, err := uc.catalog.FindSpecializations(ctx, specIDs)
	if err != nil {
		return nil, err
	}
	if len(specs) != len(specIDs) {
		fields["specializations"] = "Select a valid choice. One or more specializations do not exist."
	}

	topics, err := uc.catalog.FindTopics(ctx, topicIDs)
	if err != nil {
		return nil, err
	}
	if len(topics) != len(topicIDs) {
		fields["lesson_topics"] = "Select a valid choice. One or more lesson topics do not exist."
	} else if len(specIDs) > 0 {
		allowed := make(map[uint]bool, len(specIDs))
		for _, id := range specIDs {
			allowed[id] = true
		}
		for _, t := range topics {
			if !allowed[t.SpecializationID] {
				fields["lesson_topics"] = "Lesson topic \"" + t.Name + "\" does not belong to the selected specializations."
				break
			}
		}
	}

	if len(fields) > 0 {
		return nil, httperr.InvalidFields(fields)
	}

	// --------------------------------------------------
	// 3. Get-or-create
	// --------------------------------------------------
	profile, err := uc.repo.GetProfileByUser(ctx, in.UserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = &models.TeacherProfile{UserID: in.UserID, IsAvailable: true}
	}

	profile.HourlyRate = in.HourlyRate
	profile.ExperienceYears = in.ExperienceYears
	profile.About = about
	if in.IsAvailable != nil {
		profile.IsAvailable = *in.IsAvailable
	}

	created := profile.ID == 0
	if err := uc.repo.SaveProfile(ctx, profile, specs, topics); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionTeacherProfileSaved,
		Entity:   "teacher_profile",
		EntityID: &profile.ID,
		Metadata: map[string]any{
			"created":         created,
			"specializations": specIDs,
			"lesson_topics":   topicIDs,
		},
	})

	return profile, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
