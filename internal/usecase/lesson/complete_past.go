package lesson

import (
	"context"

	"github.com/Lukas18007/dyschool/internal/audit"
	domain "github.com/Lukas18007/dyschool/internal/domain/lesson"
	"github.com/Lukas18007/dyschool/internal/timezone"
)

// CompletePastBookings closes confirmed bookings whose slot has ended,
// together with their requests.
type CompletePastBookings struct {
	repo  domain.Repository
	clock *timezone.Clock
	audit *audit.Dispatcher
}

func NewCompletePastBookings(
	repo domain.Repository,
	clock *timezone.Clock,
	audit *audit.Dispatcher,
) *CompletePastBookings {
	return &CompletePastBookings{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

func (uc *CompletePastBookings) Execute(ctx context.Context) (int, error) {
	bookings, err := uc.repo.ListBookingsByStatus(ctx, domain.BookingConfirmed)
	if err != nil {
		return 0, err
	}

	now := uc.clock.Now()
	loc := uc.clock.Location()

	completed := 0
	for i := range bookings {
		b := &bookings[i]
		if b.TeacherAvailability.EndsAt(loc).After(now) {
			continue
		}

		if err := domain.CheckBookingTransition(domain.BookingStatus(b.Status), domain.BookingCompleted); err != nil {
			continue
		}

		var moved bool
		err := uc.repo.Atomic(ctx, func(tx domain.Repository) error {
			ok, err := tx.TransitionBooking(ctx, b.ID, domain.BookingConfirmed, domain.BookingCompleted)
			if err != nil || !ok {
				return err
			}
			moved = true

			// a cancelled request stays cancelled
			_, err = tx.TransitionRequest(ctx, b.LessonRequestID, domain.RequestMatched, domain.RequestCompleted)
			return err
		})
		if err != nil {
			return completed, err
		}
		if !moved {
			continue
		}

		completed++
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionBookingCompleted,
			Entity:   "lesson_booking",
			EntityID: &b.ID,
			Metadata: map[string]any{"lesson_request_id": b.LessonRequestID},
		})
	}

	return completed, nil
}
