package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/internal/ui"
)

// Direction is the main axis of a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children along one axis with an optional gap and
// separator between them.
type Stack struct {
	BaseComponent
	children   []ui.Renderable
	direction  Direction
	gap        int
	crossAlign CrossAxisAlignment
	divided    bool
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack with the default context.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack and its children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx.WithConstraints(s.childConstraints(ctx.Constraints))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := renderChild(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	var content string
	if len(views) > 0 {
		content = s.join(views, ctx)
	}

	final := s.ComputeStyle(ctx)
	if ctx.Constraints.MaxWidth > 0 {
		final = final.MaxWidth(ctx.Constraints.MaxWidth)
	}
	return final.Render(content)
}

func (s *Stack) childConstraints(parent Constraints) Constraints {
	child := parent
	if s.direction == DirectionHorizontal && parent.MaxWidth > 0 && len(s.children) > 0 {
		available := parent.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			child.MaxWidth = available / len(s.children)
		}
	}
	return child
}

func (s *Stack) join(views []string, ctx RenderContext) string {
	pos := s.crossAlign.toLipglossPosition()

	var sep string
	hasSep := s.gap > 0 || s.divided
	if s.direction == DirectionHorizontal {
		sep = strings.Repeat(" ", s.gap)
		if s.divided {
			sep += "│" + sep
		}
	} else if s.divided {
		width := 0
		for _, v := range views {
			width = max(width, lipgloss.Width(v))
		}
		sep = NewDivider().WithWidth(width).ViewWithContext(ctx)
	} else if s.gap > 0 {
		// A block of n-1 newlines is n blank rows.
		sep = strings.Repeat("\n", s.gap-1)
	}

	parts := views
	if hasSep {
		parts = make([]string, 0, len(views)*2-1)
		for i, v := range views {
			if i > 0 {
				parts = append(parts, sep)
			}
			parts = append(parts, v)
		}
	}

	if s.direction == DirectionHorizontal {
		return lipgloss.JoinHorizontal(pos, parts...)
	}
	return lipgloss.JoinVertical(pos, parts...)
}

// WithDirection sets the main axis.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the cells between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithDivided draws a separator between children.
func (s *Stack) WithDivided(divided bool) *Stack {
	s.divided = divided
	return s
}

// WithStyle sets the raw style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the children.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
