package components

import (
	"github.com/alexisbeaulieu97/prism/internal/feedback"
	"github.com/alexisbeaulieu97/prism/internal/platform"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Button is an actionable control. Its variant, label and transient
// success/error presentation are owned by a feedback controller.
type Button struct {
	BaseComponent
	composer  style.Composer
	config    style.Configuration
	feedback  *feedback.Controller
	indicator string
}

// NewButton creates a button presenting label with variant. scheduler must
// be non-nil.
func NewButton(label, variant string, scheduler platform.Scheduler, opts feedback.Options) *Button {
	b := &Button{
		BaseComponent: NewBaseComponent(),
		composer:      style.NewComposer("button"),
		feedback:      feedback.New(variant, label, scheduler, opts),
	}
	b.SetAppliers(PaddingX(SpacingSizeSmall), Typography(TypographyVariantEmphasis))
	return b
}

// WithConfiguration sets the static style configuration.
func (b *Button) WithConfiguration(cfg style.Configuration) *Button {
	b.config = cfg
	return b
}

// WithBusyIndicator sets the text shown before the label while busy, such
// as a spinner frame.
func (b *Button) WithBusyIndicator(indicator string) *Button {
	b.indicator = indicator
	return b
}

// Feedback returns the button's feedback controller.
func (b *Button) Feedback() *feedback.Controller {
	return b.feedback
}

// Click runs action when the button accepts actions. See
// feedback.Controller.HandleClick.
func (b *Button) Click(action func()) bool {
	return b.feedback.HandleClick(action)
}

// Tokens returns the configured tokens followed by the runtime state.
func (b *Button) Tokens() []string {
	return b.composer.Compose(b.config, b.feedback.StateTokens()...)
}

// Label returns the displayed label.
func (b *Button) Label() string {
	return b.feedback.Content()
}

// Dispose cancels any pending feedback revert.
func (b *Button) Dispose() {
	b.feedback.Dispose()
}

func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Button) ViewWithContext(ctx RenderContext) string {
	label := b.feedback.Content()
	if b.feedback.Busy() && b.indicator != "" {
		label = b.indicator + " " + label
	}
	return b.ComputeStyle(ctx, b.Tokens()...).Render(label)
}
