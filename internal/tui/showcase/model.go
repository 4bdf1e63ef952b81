// Package showcase is an interactive bubbletea demo of the feedback button
// and the modal overlay.
package showcase

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/prism/internal/feedback"
	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/internal/overlay"
	"github.com/alexisbeaulieu97/prism/internal/placement"
	"github.com/alexisbeaulieu97/prism/internal/platform"
	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/internal/ui/components"
)

// actionDelay is how long the simulated action behind a click takes.
const actionDelay = 800 * time.Millisecond

var variants = []string{"primary", "secondary", "info"}

// Options configures the showcase.
type Options struct {
	Logger           *logger.Logger
	Scheme           *platform.StaticScheme
	FeedbackDuration time.Duration

	ButtonStyle style.Configuration
	ModalStyle  style.Configuration
	Placement   *placement.Spec
}

// session holds the state shared with controller callbacks, which run
// synchronously inside Update.
type session struct {
	modalOpen bool
	status    string
	clicks    int
	variant   int
	theme     components.Theme
}

// Model is the showcase bubbletea model.
type Model struct {
	keys      keyMap
	scheduler *TickScheduler
	keyBus    *platform.KeyBus
	document  *platform.MemoryDocument
	scheme    *platform.StaticScheme
	log       *logger.Logger

	button  *components.Button
	modal   *components.Modal
	overlay *overlay.Controller
	spinner spinner.Model

	s *session

	width  int
	height int
}

// New builds the showcase model.
func New(opts Options) Model {
	scheme := opts.Scheme
	if scheme == nil {
		scheme = platform.TerminalScheme()
	}

	m := Model{
		keys:      defaultKeyMap(),
		scheduler: NewTickScheduler(),
		keyBus:    platform.NewKeyBus(),
		document:  platform.NewMemoryDocument(map[string]string{platform.OverflowProperty: "auto"}),
		scheme:    scheme,
		log:       opts.Logger,
		s:         &session{status: "ready"},
		width:     80,
		height:    24,
	}

	m.button = components.NewButton("Save", variants[0], m.scheduler, feedback.Options{
		Duration:       opts.FeedbackDuration,
		SuccessMessage: "Saved",
		ErrorMessage:   "Failed",
		ClickInterval:  300 * time.Millisecond,
		OnStart: func(p feedback.Phase) {
			m.s.status = p.String() + " feedback"
		},
		OnComplete: func(p feedback.Phase) {
			m.s.status = p.String() + " feedback finished"
		},
		Logger: opts.Logger,
	}).WithConfiguration(opts.ButtonStyle)

	overlayOpts := overlay.DefaultOptions()
	overlayOpts.Keys = m.keyBus
	overlayOpts.Scroll = platform.NewScrollLock(m.document)
	overlayOpts.Logger = opts.Logger
	overlayOpts.OnClose = func() {
		m.s.modalOpen = false
		m.s.status = "modal dismissed"
	}
	if !isZeroStyle(opts.ModalStyle) {
		overlayOpts.Style = opts.ModalStyle
	}
	m.overlay = overlay.New(overlayOpts)

	m.modal = components.NewModal(m.overlay, "Discard changes?",
		components.NewText("Press enter to confirm, esc or click outside to cancel."))
	if opts.Placement != nil {
		m.modal.WithPlacement(*opts.Placement)
	}

	components.FollowScheme(scheme, func(th components.Theme) { m.s.theme = th })

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m.spinner = sp

	return m
}

func isZeroStyle(cfg style.Configuration) bool {
	return len(style.NewComposer("x").Compose(cfg)) == 0
}

// Init starts with no commands; timers are requested as they are scheduled.
func (m Model) Init() tea.Cmd {
	return nil
}

// renderContext reserves the bottom row for the help line.
func (m Model) renderContext() components.RenderContext {
	return components.DefaultContext().
		WithTheme(m.s.theme).
		WithCanvas(m.width, max(m.height-1, 1))
}

// syncOverlay applies the session's open flag to the overlay controller.
func (m Model) syncOverlay() {
	m.overlay.SetOpen(m.s.modalOpen)
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.s.status
}

// Button returns the feedback button.
func (m Model) Button() *components.Button {
	return m.button
}

// Overlay returns the modal's overlay controller.
func (m Model) Overlay() *overlay.Controller {
	return m.overlay
}

// ScrollLocked reports whether the background is scroll-locked.
func (m Model) ScrollLocked() bool {
	v, _ := m.document.Style(platform.OverflowProperty)
	return v == "hidden"
}

// Close releases the controllers.
func (m Model) Close() {
	m.button.Dispose()
	m.overlay.Dispose()
}
