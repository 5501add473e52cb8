package lesson

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Lukas18007/dyschool/internal/audit"
	domain "github.com/Lukas18007/dyschool/internal/domain/lesson"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/models"
)

var (
	errRequestNotPending = httperr.Conflict(
		"request_not_pending",
		"This lesson request has already been matched or closed.",
	)
	errAlreadyAccepted = httperr.Conflict(
		"availability_already_accepted",
		"This availability has already been accepted.",
	)
)

// AcceptAvailability turns a teacher's proposed slot into a confirmed booking.
//
// The request moves pending → matched through a conditional update inside the
// same transaction that flips the availability and inserts the booking, so two
// concurrent acceptances for one request cannot both succeed.
type AcceptAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAcceptAvailability(repo domain.Repository, audit *audit.Dispatcher) *AcceptAvailability {
	return &AcceptAvailability{repo: repo, audit: audit}
}

func (uc *AcceptAvailability) Execute(
	ctx context.Context,
	studentID uint,
	availabilityID uint,
) (*models.LessonBooking, error) {

	// --------------------------------------------------
	// 1. Disponibilidade + dono do pedido
	// --------------------------------------------------
	a, err := uc.repo.GetAvailability(ctx, availabilityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("availability_not_found", "Availability not found.")
		}
		return nil, err
	}

	if a.LessonRequest.StudentID != studentID {
		return nil, httperr.Forbidden(
			"not_request_owner",
			"You can only accept availability for your own lesson requests.",
			"/student/dashboard/",
		)
	}

	current := domain.RequestStatus(a.LessonRequest.Status)
	if err := domain.CheckRequestTransition(current, domain.RequestMatched); err != nil {
		return nil, errRequestNotPending
	}

	// --------------------------------------------------
	// 2. Transação: pedido → matched, disponibilidade aceita, reserva
	// --------------------------------------------------
	booking := &models.LessonBooking{
		LessonRequestID:       a.LessonRequestID,
		TeacherID:             a.TeacherID,
		TeacherAvailabilityID: a.ID,
		Status:                string(domain.InitialBookingStatus()),
	}

	err = uc.repo.Atomic(ctx, func(tx domain.Repository) error {
		ok, err := tx.TransitionRequest(ctx, a.LessonRequestID, domain.RequestPending, domain.RequestMatched)
		if err != nil {
			return err
		}
		if !ok {
			return errRequestNotPending
		}

		ok, err = tx.MarkAvailabilityAccepted(ctx, a.ID)
		if err != nil {
			return err
		}
		if !ok {
			return errAlreadyAccepted
		}

		if err := tx.CreateBooking(ctx, booking); err != nil {
			if httperr.IsUniqueViolation(err) {
				return errAlreadyAccepted
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	booking.Teacher = a.Teacher
	booking.TeacherAvailability = *a
	booking.TeacherAvailability.IsAccepted = true

	// --------------------------------------------------
	// 3. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &studentID,
		Action:   audit.ActionBookingCreated,
		Entity:   "lesson_booking",
		EntityID: &booking.ID,
		Metadata: map[string]any{
			"lesson_request_id":       a.LessonRequestID,
			"teacher_availability_id": a.ID,
			"teacher_id":              a.TeacherID,
		},
	})

	return booking, nil
}
