package components

import (
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/internal/ui"
)

// Box is a configuration-driven container. Its configuration is composed
// into class tokens, which the stylesheet turns into the box style, and its
// layout dimensions arrange the children.
type Box struct {
	BaseComponent
	composer style.Composer
	config   style.Configuration
	states   []string
	children []ui.Renderable
}

// NewBox creates a box for the "box" component.
func NewBox(cfg style.Configuration, children ...ui.Renderable) *Box {
	return &Box{
		BaseComponent: NewBaseComponent(),
		composer:      style.NewComposer("box"),
		config:        cfg,
		children:      children,
	}
}

// WithComponent changes the component name used in tokens.
func (b *Box) WithComponent(name string) *Box {
	b.composer.Component = name
	return b
}

// WithStates sets runtime state tokens.
func (b *Box) WithStates(states ...string) *Box {
	b.states = states
	return b
}

// Add appends children.
func (b *Box) Add(children ...ui.Renderable) *Box {
	b.children = append(b.children, children...)
	return b
}

// Configuration returns the box configuration.
func (b *Box) Configuration() style.Configuration {
	return b.config
}

// Tokens returns the composed class tokens.
func (b *Box) Tokens() []string {
	return b.composer.Compose(b.config, b.states...)
}

func (b *Box) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Box) ViewWithContext(ctx RenderContext) string {
	content := b.layout().ViewWithContext(ctx)
	rendered := b.ComputeStyle(ctx, b.Tokens()...).Render(content)

	if ctx.Width > 0 {
		switch b.config.Align {
		case style.AlignCenter:
			return lipgloss.PlaceHorizontal(ctx.Width, lipgloss.Center, rendered)
		case style.AlignRight:
			return lipgloss.PlaceHorizontal(ctx.Width, lipgloss.Right, rendered)
		}
	}
	return rendered
}

func (b *Box) layout() *Stack {
	cfg := b.config
	gap := 0
	if cfg.Layout == style.LayoutFlex || cfg.Layout == style.LayoutGrid {
		gap, _ = strconv.Atoi(cfg.Gap)
	}

	switch cfg.Layout {
	case style.LayoutFlex:
		children := b.children
		dir := DirectionHorizontal
		switch cfg.FlexDirection {
		case style.DirectionColumn:
			dir = DirectionVertical
		case style.DirectionColumnReverse:
			dir = DirectionVertical
			children = reversed(children)
		case style.DirectionRowReverse:
			children = reversed(children)
		}
		return NewStack(children...).
			WithDirection(dir).
			WithGap(gap).
			WithCrossAlign(crossAlign(cfg.AlignItems))

	case style.LayoutGrid:
		cols, err := strconv.Atoi(cfg.Columns)
		if err != nil || cols < 1 {
			cols = 1
		}
		grid := VStack().WithGap(gap)
		for row := range slices.Chunk(b.children, cols) {
			grid.Add(HStack(row...).WithGap(gap))
		}
		return grid

	case style.LayoutInline:
		return HStack(b.children...)

	case style.LayoutStack:
		return VStack(b.children...).WithDivided(cfg.Divided)

	default:
		return VStack(b.children...)
	}
}

func crossAlign(items style.AlignItems) CrossAxisAlignment {
	switch items {
	case style.ItemsCenter:
		return CrossCenter
	case style.ItemsEnd:
		return CrossEnd
	default:
		return CrossStart
	}
}

func reversed(children []ui.Renderable) []ui.Renderable {
	out := slices.Clone(children)
	slices.Reverse(out)
	return out
}
