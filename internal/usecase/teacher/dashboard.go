package teacher

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Lukas18007/dyschool/internal/domain/lesson"
	domain "github.com/Lukas18007/dyschool/internal/domain/teacher"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/models"
)

type DashboardView struct {
	Profile         *models.TeacherProfile
	PendingRequests []models.LessonRequest
	Availabilities  []models.TeacherAvailability
	Bookings        []models.LessonBooking
}

type Dashboard struct {
	teachers domain.Repository
	lessons  lesson.Repository
}

func NewDashboard(teachers domain.Repository, lessons lesson.Repository) *Dashboard {
	return &Dashboard{teachers: teachers, lessons: lessons}
}

func (uc *Dashboard) Execute(ctx context.Context, teacherID uint) (*DashboardView, error) {
	profile, err := uc.teachers.GetProfileByUser(ctx, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.BusinessError{
				Kind:     httperr.KindNotFound,
				Code:     "teacher_profile_required",
				Message:  "Please complete your teacher profile first.",
				Redirect: "/teacher/profile/",
			}
		}
		return nil, err
	}

	topicIDs := make([]uint, 0, len(profile.LessonTopics))
	for _, t := range profile.LessonTopics {
		topicIDs = append(topicIDs, t.ID)
	}

	pending, err := uc.lessons.ListPendingRequestsForTopics(ctx, topicIDs, teacherID)
	if err != nil {
		return nil, err
	}

	availabilities, err := uc.lessons.ListAvailabilitiesByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.lessons.ListBookingsByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		Profile:         profile,
		PendingRequests: pending,
		Availabilities:  availabilities,
		Bookings:        bookings,
	}, nil
}
