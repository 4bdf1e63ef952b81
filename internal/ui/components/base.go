package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/internal/ui"
)

// BaseComponent carries the raw style and strategy a component renders with.
// Embed it in component structs.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy applies theme-aware styling to a base style.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc transforms a style using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies StyleFuncs in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle resolves the component style for ctx: the raw style, then the
// strategy, then the stylesheet rules for tokens.
func (b *BaseComponent) ComputeStyle(ctx RenderContext, tokens ...string) lipgloss.Style {
	style := b.style
	if b.strategy != nil {
		style = b.strategy.Apply(style, ctx.Theme)
	}
	if len(tokens) == 0 {
		return style
	}
	return ctx.Stylesheet().Apply(style, ctx.Theme, tokens)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// Constraints bounds the size of a rendered component. -1 means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// HasWidth reports whether there is a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// RenderContext carries the theme, stylesheet and layout information a
// component renders with.
type RenderContext struct {
	Theme       Theme
	Sheet       *Stylesheet
	Constraints Constraints

	// Width and Height are the canvas size in cells, zero when unknown.
	Width  int
	Height int
}

// DefaultContext returns a context with the default theme and stylesheet.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Sheet:       DefaultStylesheet(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a copy of the context using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a copy of the context with c.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithCanvas returns a copy of the context with the canvas size set.
func (r RenderContext) WithCanvas(width, height int) RenderContext {
	r.Width, r.Height = width, height
	return r
}

// Stylesheet returns the context stylesheet, or the default one.
func (r RenderContext) Stylesheet() *Stylesheet {
	if r.Sheet == nil {
		return DefaultStylesheet()
	}
	return r.Sheet
}

// ContextualRenderable is a component that renders against a RenderContext.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// CrossAxisAlignment specifies how children align along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) toLipglossPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func renderChild(child ui.Renderable, ctx RenderContext) string {
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
