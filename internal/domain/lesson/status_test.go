package lesson

import (
	"testing"

	"github.com/Lukas18007/dyschool/internal/httperr"
)

func TestRequestTransitions(t *testing.T) {
	cases := []struct {
		from, to RequestStatus
		ok       bool
	}{
		{RequestPending, RequestMatched, true},
		{RequestPending, RequestCancelled, true},
		{RequestPending, RequestCompleted, false},
		{RequestMatched, RequestCompleted, true},
		{RequestMatched, RequestMatched, false},
		{RequestMatched, RequestPending, false},
		{RequestCompleted, RequestCancelled, false},
		{RequestCancelled, RequestPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.ok {
			t.Fatalf("%s -> %s: got %v want %v", tc.from, tc.to, got, tc.ok)
		}
		err := CheckRequestTransition(tc.from, tc.to)
		if tc.ok && err != nil {
			t.Fatalf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if !tc.ok && !httperr.IsBusiness(err, "invalid_request_transition") {
			t.Fatalf("%s -> %s: expected invalid_request_transition, got %v", tc.from, tc.to, err)
		}
	}
}

func TestBookingTransitions(t *testing.T) {
	if !BookingConfirmed.CanTransition(BookingCompleted) {
		t.Fatalf("confirmed bookings must complete")
	}
	if BookingCompleted.CanTransition(BookingCancelled) {
		t.Fatalf("completed is terminal")
	}
	if err := CheckBookingTransition(BookingCancelled, BookingConfirmed); !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRequestStatusValid(t *testing.T) {
	if !RequestMatched.Valid() || RequestStatus("archived").Valid() {
		t.Fatalf("unexpected validity result")
	}
}
