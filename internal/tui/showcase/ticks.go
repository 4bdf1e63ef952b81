package showcase

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/prism/internal/platform"
)

// timerFiredMsg is delivered when a scheduled tick elapses.
type timerFiredMsg struct {
	id uint64
}

// TickScheduler implements platform.Scheduler on top of tea.Tick, so timer
// callbacks run inside Update like every other state change. Scheduled
// ticks are collected until Drain hands them to the runtime.
type TickScheduler struct {
	next      uint64
	callbacks map[uint64]func()
	queued    []tea.Cmd
}

// NewTickScheduler returns an empty scheduler.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{callbacks: make(map[uint64]func())}
}

type tickTimer struct {
	s  *TickScheduler
	id uint64
}

// AfterFunc queues a tick that will run f after d once drained.
func (s *TickScheduler) AfterFunc(d time.Duration, f func()) platform.Timer {
	s.next++
	id := s.next
	s.callbacks[id] = f
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return &tickTimer{s: s, id: id}
}

// Stop forgets the callback; the tick still arrives but is ignored.
func (t *tickTimer) Stop() bool {
	if _, ok := t.s.callbacks[t.id]; !ok {
		return false
	}
	delete(t.s.callbacks, t.id)
	return true
}

// Drain returns the ticks queued since the last call as one command.
func (s *TickScheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Fire runs the callback for id and reports whether it was still pending.
func (s *TickScheduler) Fire(id uint64) bool {
	f, ok := s.callbacks[id]
	if !ok {
		return false
	}
	delete(s.callbacks, id)
	f()
	return true
}

// Pending returns the number of callbacks not yet fired or stopped.
func (s *TickScheduler) Pending() int {
	return len(s.callbacks)
}
