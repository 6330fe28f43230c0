package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const defaultSweepInterval = time.Minute

// DraftSource is the part of the composer the sweeper needs.
type DraftSource interface {
	Sweep() int
}

// DraftSweeper periodically drops drafts whose composition session went idle.
type DraftSweeper struct {
	drafts   DraftSource
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDraftSweeper constructs a sweeper running every interval.
func NewDraftSweeper(drafts DraftSource, interval time.Duration, logger *slog.Logger) *DraftSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &DraftSweeper{drafts: drafts, interval: interval, logger: logger}
}

// Start launches the background loop. The loop outlives ctx cancellation and
// ends only on Stop. Calling Start twice is a no-op.
func (s *DraftSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop ends the loop and waits for it to exit.
func (s *DraftSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *DraftSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce()
		}
	}
}

func (s *DraftSweeper) sweepOnce() {
	if removed := s.drafts.Sweep(); removed > 0 {
		s.logger.Info("expired drafts removed", slog.Int("count", removed))
	}
}
