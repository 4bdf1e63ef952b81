// Package overlay implements the lifecycle of a modal-style container: the
// open/closed state follows a flag owned by the caller, and while open the
// overlay holds a document scroll lock and, when Escape dismisses, a global
// key listener.
package overlay

import (
	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/internal/platform"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

// State is the lifecycle state of an overlay.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Node identifies an element for click hit-testing. Values must be
// comparable; pointers are the usual choice.
type Node interface{}

// ClickEvent is a click observed by the backdrop. Target is the element that
// was clicked; CurrentTarget is the backdrop element handling the event.
type ClickEvent struct {
	Target        Node
	CurrentTarget Node
}

// Options configures a Controller.
type Options struct {
	DismissOnBackdrop bool
	DismissOnEscape   bool
	// OnClose is asked to close the overlay. The controller never flips the
	// open flag itself. A nil OnClose makes dismissal a no-op.
	OnClose func()

	Component string
	Style     style.Configuration

	Keys   platform.KeySource
	Scroll *platform.ScrollLock
	Logger *logger.Logger
}

// DefaultOptions dismisses on both backdrop click and Escape.
func DefaultOptions() Options {
	return Options{
		DismissOnBackdrop: true,
		DismissOnEscape:   true,
		Component:         "modal",
		Style:             style.Configuration{Size: style.SizeMD},
	}
}

// Controller tracks the overlay state and its Open-period side effects.
type Controller struct {
	opts     Options
	composer style.Composer
	state    State
	scope    *Scope
	disposed bool
}

// New returns a closed Controller.
func New(opts Options) *Controller {
	if opts.Component == "" {
		opts.Component = "modal"
	}
	return &Controller{
		opts:     opts,
		composer: style.NewComposer(opts.Component).ForOverlay(),
		state:    Closed,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// IsOpen reports whether the overlay is open.
func (c *Controller) IsOpen() bool {
	return c.state == Open
}

// SetOpen follows the externally owned open flag. Repeating the current
// value does nothing. A disposed controller stays closed.
func (c *Controller) SetOpen(open bool) {
	switch {
	case c.disposed:
		return
	case open && c.state == Closed:
		c.enter()
	case !open && c.state == Open:
		c.leave("flag")
	}
}

// Dispose tears the controller down, releasing any held side effects.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	if c.state == Open {
		c.leave("dispose")
	}
	c.disposed = true
}

func (c *Controller) enter() {
	scope := &Scope{}
	entered := false
	defer func() {
		if !entered {
			scope.Close()
		}
	}()

	if c.opts.Keys != nil && c.opts.DismissOnEscape {
		reg := c.opts.Keys.AddKeyListener(c.onKey)
		scope.Add(reg.Remove)
	}
	if c.opts.Scroll != nil {
		scope.Add(c.opts.Scroll.Acquire())
	}

	c.scope = scope
	c.state = Open
	entered = true
	c.opts.Logger.DebugField("overlay state change", "state", Open.String())
}

func (c *Controller) leave(reason string) {
	if c.scope != nil {
		c.scope.Close()
		c.scope = nil
	}
	c.state = Closed
	c.opts.Logger.With("reason", reason).DebugField("overlay state change", "state", Closed.String())
}

func (c *Controller) onKey(ev platform.KeyEvent) {
	if c.state != Open {
		return
	}
	if ev.Key == platform.KeyEscape {
		c.requestClose("escape")
	}
}

// HandleBackdropClick requests dismissal when the click landed on the
// backdrop itself. Clicks that bubbled up from overlay content are ignored.
// It reports whether a close was requested.
func (c *Controller) HandleBackdropClick(ev ClickEvent) bool {
	if c.state != Open || !c.opts.DismissOnBackdrop {
		return false
	}
	if ev.Target == nil || ev.Target != ev.CurrentTarget {
		return false
	}
	c.requestClose("backdrop")
	return true
}

// RequestClose asks the owner to close the overlay, for example from a close
// button inside the content.
func (c *Controller) RequestClose() {
	if c.state != Open {
		return
	}
	c.requestClose("request")
}

func (c *Controller) requestClose(source string) {
	c.opts.Logger.DebugField("overlay close requested", "source", source)
	if c.opts.OnClose != nil {
		c.opts.OnClose()
	}
}

// Classes returns the overlay's class tokens. Closed overlays render
// nothing and return nil.
func (c *Controller) Classes() []string {
	if c.state != Open {
		return nil
	}
	return c.composer.Compose(c.opts.Style, "open")
}

// BackdropClasses returns the class tokens of the backdrop element.
func (c *Controller) BackdropClasses() []string {
	if c.state != Open {
		return nil
	}
	return style.NewComposer(c.opts.Component+"-backdrop").Compose(style.Configuration{Dark: c.opts.Style.Dark}, "open")
}
