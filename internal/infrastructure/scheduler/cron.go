// Package scheduler implements the scheduler port on robfig/cron. A single
// recurring job is managed at a time; Start replaces any running schedule and
// Stop is safe to call repeatedly.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/medeiros-dev/reseller-vault/pkg/logger"
)

type CronScheduler struct {
	mu   sync.Mutex
	cron *cron.Cron
}

func NewCronScheduler() *CronScheduler {
	return &CronScheduler{}
}

// Start schedules tick to run every interval. A previously running schedule
// is stopped first, so re-arming with a new interval is a single call.
func (s *CronScheduler) Start(interval time.Duration, tick func()) error {
	if interval <= 0 {
		return fmt.Errorf("scheduler interval must be positive, got %s", interval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		s.cron.Stop()
	}

	c := cron.New()
	spec := fmt.Sprintf("@every %s", interval)
	if _, err := c.AddFunc(spec, tick); err != nil {
		return fmt.Errorf("scheduling %q: %w", spec, err)
	}
	c.Start()
	s.cron = c

	logger.L().Info("Scheduler armed", zap.Duration("interval", interval))
	return nil
}

// Stop halts the running schedule. Calling Stop when nothing is scheduled,
// or calling it twice, is a no-op.
func (s *CronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return
	}
	s.cron.Stop()
	s.cron = nil
	logger.L().Info("Scheduler stopped")
}
