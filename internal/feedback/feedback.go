// Package feedback implements the transient success/error state of an
// actionable control: a trigger swaps in a feedback variant and message, and
// a single timer restores the original presentation.
package feedback

import (
	"time"

	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/internal/platform"
)

// DefaultDuration is how long a feedback cycle lasts when Options leaves it unset.
const DefaultDuration = 2 * time.Second

// Phase is the feedback state of a control.
type Phase int

const (
	Idle Phase = iota
	Success
	Error
)

func (p Phase) String() string {
	switch p {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// Options configures a Controller.
type Options struct {
	Duration time.Duration

	// Messages replace the displayed content during a cycle when non-empty.
	SuccessMessage string
	ErrorMessage   string

	// Variants shown during a cycle. They default to "success" and "error".
	SuccessVariant string
	ErrorVariant   string

	// ClickInterval, when positive, gates HandleClick so that at most one
	// click is accepted per interval.
	ClickInterval time.Duration

	OnStart    func(Phase)
	OnComplete func(Phase)

	Logger *logger.Logger
}

// Signals are edge-triggered success/error inputs owned by the caller.
type Signals struct {
	Success bool
	Error   bool
}

// Controller is the per-control feedback state machine. It is not safe for
// concurrent use; the scheduler must run callbacks on the UI thread.
type Controller struct {
	opts      Options
	scheduler platform.Scheduler
	gate      *Debouncer

	variant string
	content string
	phase   Phase

	savedVariant string
	savedContent string

	timer      platform.Timer
	generation uint64

	busy     bool
	disabled bool
	signals  Signals
	disposed bool
}

// New returns an idle controller presenting variant and content. scheduler
// runs the revert timer and must be non-nil; New panics otherwise.
func New(variant, content string, scheduler platform.Scheduler, opts Options) *Controller {
	if scheduler == nil {
		panic("feedback: New called with a nil scheduler")
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.SuccessVariant == "" {
		opts.SuccessVariant = Success.String()
	}
	if opts.ErrorVariant == "" {
		opts.ErrorVariant = Error.String()
	}
	c := &Controller{
		opts:      opts,
		scheduler: scheduler,
		variant:   variant,
		content:   content,
	}
	if opts.ClickInterval > 0 {
		c.gate = NewDebouncer(scheduler, opts.ClickInterval)
	}
	return c
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Variant returns the displayed variant.
func (c *Controller) Variant() string { return c.variant }

// Content returns the displayed content.
func (c *Controller) Content() string { return c.content }

// Saved returns the variant and content captured when the active cycle
// started. Both are empty while idle.
func (c *Controller) Saved() (variant, content string) {
	return c.savedVariant, c.savedContent
}

// Busy reports whether the control is in a transient busy state.
func (c *Controller) Busy() bool { return c.busy }

// TriggerSuccess starts a success cycle. See Trigger.
func (c *Controller) TriggerSuccess() bool { return c.Trigger(Success) }

// TriggerError starts an error cycle. See Trigger.
func (c *Controller) TriggerError() bool { return c.Trigger(Error) }

// Trigger starts a feedback cycle for outcome and reports whether it did.
// Only an idle controller accepts a trigger; anything else is a no-op.
func (c *Controller) Trigger(outcome Phase) bool {
	if c.disposed || outcome == Idle || c.phase != Idle {
		return false
	}

	c.savedVariant, c.savedContent = c.variant, c.content
	c.phase = outcome

	message := c.opts.SuccessMessage
	c.variant = c.opts.SuccessVariant
	if outcome == Error {
		message = c.opts.ErrorMessage
		c.variant = c.opts.ErrorVariant
	}
	if message != "" {
		c.content = message
	}

	c.arm()
	c.opts.Logger.DebugField("feedback started", "outcome", outcome.String())
	if c.opts.OnStart != nil {
		c.opts.OnStart(outcome)
	}
	return true
}

// Observe feeds the current signal values. A signal going from false to
// true triggers its outcome; success is considered before error.
func (c *Controller) Observe(s Signals) {
	prev := c.signals
	c.signals = s
	if s.Success && !prev.Success {
		c.Trigger(Success)
	}
	if s.Error && !prev.Error {
		c.Trigger(Error)
	}
}

// SetVariant applies a new externally owned variant. An in-flight cycle is
// cancelled: its timer is stopped, the saved content is restored and the
// controller returns to idle without a completion notification.
func (c *Controller) SetVariant(variant string) {
	if c.phase != Idle {
		c.cancel()
		c.content = c.savedContent
		c.phase = Idle
		c.savedVariant, c.savedContent = "", ""
		c.opts.Logger.DebugField("feedback cancelled", "reason", "variant change")
	}
	c.variant = variant
}

// SetContent updates the content. During a cycle the new content is what
// will be restored when the cycle ends.
func (c *Controller) SetContent(content string) {
	if c.phase != Idle {
		c.savedContent = content
		return
	}
	c.content = content
}

// SetBusy marks a transient busy state during which actions are rejected.
func (c *Controller) SetBusy(busy bool) { c.busy = busy }

// Disabled reports whether the control is disabled.
func (c *Controller) Disabled() bool { return c.disabled }

// SetDisabled marks the control disabled.
func (c *Controller) SetDisabled(disabled bool) { c.disabled = disabled }

// AllowAction reports whether a user-initiated action may run now.
func (c *Controller) AllowAction() bool {
	return !c.disposed && c.phase == Idle && !c.busy && !c.disabled
}

// HandleClick runs action if the control accepts actions and the click gate
// is open. It reports whether action ran.
func (c *Controller) HandleClick(action func()) bool {
	if !c.AllowAction() {
		return false
	}
	if c.gate != nil && !c.gate.Allow() {
		return false
	}
	if action != nil {
		action()
	}
	return true
}

// StateTokens returns the runtime state names of the control, for appending
// to its composed class tokens.
func (c *Controller) StateTokens() []string {
	states := make([]string, 0, 4)
	if c.variant != "" {
		states = append(states, c.variant)
	}
	if c.phase != Idle {
		states = append(states, "feedback")
	}
	if c.busy {
		states = append(states, "busy")
	}
	if c.disabled {
		states = append(states, "disabled")
	}
	return states
}

// Dispose cancels any scheduled revert. The controller accepts no further
// triggers or actions.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.cancel()
	if c.gate != nil {
		c.gate.Stop()
	}
	c.disposed = true
}

// arm schedules the revert timer, cancelling any previous one first.
func (c *Controller) arm() {
	c.cancel()
	gen := c.generation
	c.timer = c.scheduler.AfterFunc(c.opts.Duration, func() { c.expire(gen) })
}

// cancel stops the current timer and invalidates any callback already
// queued for it.
func (c *Controller) cancel() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.generation++
}

func (c *Controller) expire(gen uint64) {
	if gen != c.generation || c.phase == Idle {
		return
	}
	outcome := c.phase
	c.timer = nil
	c.variant, c.content = c.savedVariant, c.savedContent
	c.savedVariant, c.savedContent = "", ""
	c.phase = Idle

	c.opts.Logger.DebugField("feedback completed", "outcome", outcome.String())
	if c.opts.OnComplete != nil {
		c.opts.OnComplete(outcome)
	}
}
