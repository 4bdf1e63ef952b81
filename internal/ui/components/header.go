package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header renders a title with an optional subtitle line.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a header styled with the title typography.
func NewHeader(title string) *Header {
	h := &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
	h.SetAppliers(Typography(TypographyVariantTitle))
	return h
}

func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

func (h *Header) ViewWithContext(ctx RenderContext) string {
	style := h.ComputeStyle(ctx)
	if h.subtitle == "" {
		return style.Render(h.title)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		style.Render(h.title),
		TypographyStyle(ctx.Theme, TypographyVariantSubtitle).Render(h.subtitle),
	)
}

// WithSubtitle adds a subtitle line.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// Title returns the title.
func (h *Header) Title() string {
	return h.title
}
