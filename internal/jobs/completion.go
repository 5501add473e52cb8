// Package jobs runs the periodic maintenance work of the server.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Lukas18007/dyschool/internal/logger"
)

const sweepTimeout = time.Minute

type completer interface {
	Execute(ctx context.Context) (int, error)
}

// CompletionSweep closes bookings whose lesson has already ended.
type CompletionSweep struct {
	uc  completer
	log *logger.Logger
}

func NewCompletionSweep(uc completer, log *logger.Logger) *CompletionSweep {
	if log == nil {
		log = logger.Nop()
	}
	return &CompletionSweep{uc: uc, log: log}
}

// Run satisfies cron.Job.
func (s *CompletionSweep) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	start := time.Now()
	n, err := s.uc.Execute(ctx)
	if err != nil {
		s.log.Error("completion sweep failed", "completed", n, "error", err)
		return
	}
	s.log.Info("completion sweep finished", "completed", n, "duration_ms", time.Since(start).Milliseconds())
}

// Schedule registers the sweep on a new scheduler and starts it.
// An empty spec disables the sweep and returns nil.
func Schedule(spec string, sweep *CompletionSweep) (*cron.Cron, error) {
	if spec == "" {
		return nil, nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddJob(spec, sweep); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
