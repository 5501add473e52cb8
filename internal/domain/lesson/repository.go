package lesson

import (
	"context"

	"github.com/Lukas18007/dyschool/internal/models"
)

type Repository interface {
	// -------- Lesson requests --------
	CreateRequest(ctx context.Context, r *models.LessonRequest) error
	GetRequest(ctx context.Context, id uint) (*models.LessonRequest, error)
	ListRequestsByStudent(ctx context.Context, studentID uint) ([]models.LessonRequest, error)
	ListPendingRequestsForTopics(ctx context.Context, topicIDs []uint, excludeStudentID uint) ([]models.LessonRequest, error)

	// TransitionRequest moves the request only if it is currently in from.
	TransitionRequest(ctx context.Context, id uint, from, to RequestStatus) (bool, error)

	// -------- Availabilities --------
	CreateAvailability(ctx context.Context, a *models.TeacherAvailability) error
	GetAvailability(ctx context.Context, id uint) (*models.TeacherAvailability, error)
	ListAvailabilitiesByTeacher(ctx context.Context, teacherID uint) ([]models.TeacherAvailability, error)
	ListAvailabilitiesForStudent(ctx context.Context, studentID uint) ([]models.TeacherAvailability, error)

	// MarkAvailabilityAccepted flips is_accepted only if it is still false.
	MarkAvailabilityAccepted(ctx context.Context, id uint) (bool, error)

	// -------- Bookings --------
	CreateBooking(ctx context.Context, b *models.LessonBooking) error
	ListBookingsByTeacher(ctx context.Context, teacherID uint) ([]models.LessonBooking, error)
	ListBookingsByStudent(ctx context.Context, studentID uint) ([]models.LessonBooking, error)
	ListBookingsByStatus(ctx context.Context, status BookingStatus) ([]models.LessonBooking, error)
	TransitionBooking(ctx context.Context, id uint, from, to BookingStatus) (bool, error)

	// Atomic runs fn against a repository bound to a single transaction.
	Atomic(ctx context.Context, fn func(repo Repository) error) error
}
