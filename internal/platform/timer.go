package platform

import (
	"sort"
	"time"
)

// Timer is a scheduled one-shot callback.
type Timer interface {
	// Stop cancels the timer and reports whether it was still pending.
	Stop() bool
}

// Scheduler schedules one-shot callbacks. Implementations must run callbacks
// on the same logical thread as the rest of the UI.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ManualScheduler is a deterministic Scheduler driven by Advance.
type ManualScheduler struct {
	now     time.Duration
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	s        *ManualScheduler
	seq      uint64
	deadline time.Duration
	fn       func()
	done     bool
}

// NewManualScheduler returns a scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	m.seq++
	t := &manualTimer{s: m, seq: m.seq, deadline: m.now + d, fn: f}
	m.pending = append(m.pending, t)
	return t
}

func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.s.remove(t)
	return true
}

func (m *ManualScheduler) remove(t *manualTimer) {
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

// Advance moves time forward by d, firing due timers in deadline order.
// Timers scheduled by a callback fire in the same call if they fall due.
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.deadline
		next.done = true
		m.remove(next)
		next.fn()
	}
	m.now = target
}

func (m *ManualScheduler) nextDue(target time.Duration) *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].deadline == m.pending[j].deadline {
			return m.pending[i].seq < m.pending[j].seq
		}
		return m.pending[i].deadline < m.pending[j].deadline
	})
	if m.pending[0].deadline > target {
		return nil
	}
	return m.pending[0]
}

// Pending returns the number of scheduled timers.
func (m *ManualScheduler) Pending() int {
	return len(m.pending)
}

// Now returns the elapsed manual time.
func (m *ManualScheduler) Now() time.Duration {
	return m.now
}
