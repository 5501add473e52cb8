package lesson

import "github.com/Lukas18007/dyschool/internal/httperr"

// ===============================
// Lesson request status
// ===============================

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestMatched   RequestStatus = "matched"
	RequestCompleted RequestStatus = "completed"
	RequestCancelled RequestStatus = "cancelled"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending: {RequestMatched, RequestCancelled},
	RequestMatched: {RequestCompleted, RequestCancelled},
}

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestMatched, RequestCompleted, RequestCancelled:
		return true
	}
	return false
}

func (s RequestStatus) CanTransition(to RequestStatus) bool {
	for _, next := range requestTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckRequestTransition returns a conflict error when from → to is not allowed.
func CheckRequestTransition(from, to RequestStatus) error {
	if !from.CanTransition(to) {
		return httperr.Conflict("invalid_request_transition", "Lesson request cannot move from "+string(from)+" to "+string(to)+".")
	}
	return nil
}

// ===============================
// Booking status
// ===============================

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

func (s BookingStatus) CanTransition(to BookingStatus) bool {
	for _, next := range bookingTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func CheckBookingTransition(from, to BookingStatus) error {
	if !from.CanTransition(to) {
		return httperr.Conflict("invalid_booking_transition", "Booking cannot move from "+string(from)+" to "+string(to)+".")
	}
	return nil
}

func InitialRequestStatus() RequestStatus {
	return RequestPending
}

func InitialBookingStatus() BookingStatus {
	return BookingConfirmed
}
