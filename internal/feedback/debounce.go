package feedback

import (
	"time"

	"github.com/alexisbeaulieu97/prism/internal/platform"
)

// Debouncer is a leading-edge gate: the first Allow in a quiet period
// succeeds and closes the gate until interval has elapsed.
type Debouncer struct {
	scheduler platform.Scheduler
	interval  time.Duration
	timer     platform.Timer
	closed    bool
}

// NewDebouncer returns an open gate.
func NewDebouncer(scheduler platform.Scheduler, interval time.Duration) *Debouncer {
	return &Debouncer{scheduler: scheduler, interval: interval}
}

// Allow reports whether the trigger may pass, closing the gate if so.
func (d *Debouncer) Allow() bool {
	if d.closed {
		return false
	}
	d.closed = true
	d.timer = d.scheduler.AfterFunc(d.interval, func() {
		d.closed = false
		d.timer = nil
	})
	return true
}

// Stop cancels the pending reopen and opens the gate.
func (d *Debouncer) Stop() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.closed = false
}
