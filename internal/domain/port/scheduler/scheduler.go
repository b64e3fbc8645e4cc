package scheduler

import "time"

// Scheduler runs a tick callback at a fixed cadence while the process is
// alive. It is not durable: a restart resets the schedule and missed ticks
// are not caught up.
//
// Start replaces any schedule already running. Stop is idempotent.
type Scheduler interface {
	Start(interval time.Duration, tick func()) error
	Stop()
}
