package lesson

import (
	"context"

	domain "github.com/Lukas18007/dyschool/internal/domain/lesson"
	"github.com/Lukas18007/dyschool/internal/models"
)

type StudentDashboardView struct {
	Requests       []models.LessonRequest
	Availabilities []models.TeacherAvailability
	Bookings       []models.LessonBooking
}

type StudentDashboard struct {
	repo domain.Repository
}

func NewStudentDashboard(repo domain.Repository) *StudentDashboard {
	return &StudentDashboard{repo: repo}
}

func (uc *StudentDashboard) Execute(ctx context.Context, studentID uint) (*StudentDashboardView, error) {
	requests, err := uc.repo.ListRequestsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	availabilities, err := uc.repo.ListAvailabilitiesForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookingsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &StudentDashboardView{
		Requests:       requests,
		Availabilities: availabilities,
		Bookings:       bookings,
	}, nil
}
