package worker

import (
	"context"
	"sync"
	"time"

	"github.com/harwood/farmcore/internal/logger"
)

// DefaultSweepInterval is how often the sweeper purges expired contracts.
const DefaultSweepInterval = 10 * time.Minute

// ContractPurger removes expired contracts across all farms.
type ContractPurger interface {
	PurgeExpiredContracts(ctx context.Context, now time.Time) (int, error)
}

// ContractSweeper periodically purges expired contract rows. Rotation
// already deletes a farm's expired contracts when the farm is visited; the
// sweeper handles farms nobody visits so the table does not grow without
// bound.
type ContractSweeper struct {
	purger   ContractPurger
	interval time.Duration
	now      func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewContractSweeper creates a sweeper with the given purge interval.
func NewContractSweeper(purger ContractPurger, interval time.Duration) *ContractSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &ContractSweeper{
		purger:   purger,
		interval: interval,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop. It returns immediately.
func (s *ContractSweeper) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *ContractSweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *ContractSweeper) sweep(ctx context.Context) {
	log := logger.FromContext(ctx)

	purged, err := s.purger.PurgeExpiredContracts(ctx, s.now())
	if err != nil {
		log.Error("Contract sweep failed", "error", err)
		return
	}
	if purged > 0 {
		log.Info("Purged expired contracts", "count", purged)
	}
}

// Stop halts the sweep loop and waits for it to exit.
func (s *ContractSweeper) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
