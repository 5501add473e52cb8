package audit

import (
	"context"
	"sync"
	"time"

	"github.com/Lukas18007/dyschool/internal/logger"
)

const (
	ActionUserRegistered        = "user_registered"
	ActionTeacherProfileSaved   = "teacher_profile_saved"
	ActionLessonRequestCreated  = "lesson_request_created"
	ActionAvailabilitySubmitted = "availability_submitted"
	ActionBookingCreated        = "booking_created"
	ActionBookingCompleted      = "booking_completed"
)

const queueSize = 100

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type saver interface {
	Save(ctx context.Context, ev Event) error
}

// Dispatcher writes events in the background. A nil *Dispatcher discards everything.
type Dispatcher struct {
	store saver
	log   *logger.Logger
	queue chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(store saver, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	d := &Dispatcher{
		store: store,
		log:   log,
		queue: make(chan Event, queueSize),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.store.Save(ctx, ev); err != nil {
			d.log.Error("audit write failed", "action", ev.Action, "error", err)
		}
		cancel()
	}
}

// Dispatch never blocks the caller; a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", "action", ev.Action, "entity", ev.Entity)
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}
