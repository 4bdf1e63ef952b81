package components

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/internal/overlay"
	"github.com/alexisbeaulieu97/prism/internal/placement"
	"github.com/alexisbeaulieu97/prism/internal/ui"
)

type node struct{ name string }

// Modal is an overlay dialog. The overlay controller owns its lifecycle and
// the placement spec positions the dialog on the canvas.
type Modal struct {
	BaseComponent
	controller *overlay.Controller
	title      string
	body       ui.Renderable
	spec       placement.Spec

	backdrop *node
	dialog   *node
}

// NewModal creates a modal centred on the canvas.
func NewModal(controller *overlay.Controller, title string, body ui.Renderable) *Modal {
	m := &Modal{
		BaseComponent: NewBaseComponent(),
		controller:    controller,
		title:         title,
		body:          body,
		spec:          placement.Spec{Mode: placement.ModeFixed, Placement: placement.Center},
		backdrop:      &node{name: "backdrop"},
		dialog:        &node{name: "dialog"},
	}
	m.SetAppliers(Background(PaletteSurface), Padding(SpacingSizeSmall))
	return m
}

// WithPlacement sets where the dialog is placed.
func (m *Modal) WithPlacement(spec placement.Spec) *Modal {
	m.spec = spec
	return m
}

// Controller returns the overlay controller.
func (m *Modal) Controller() *overlay.Controller {
	return m.controller
}

// Dialog renders the dialog box alone.
func (m *Modal) Dialog(ctx RenderContext) string {
	content := VStack(NewHeader(m.title), m.body).WithGap(1)
	return m.ComputeStyle(ctx, m.controller.Classes()...).Render(content.ViewWithContext(ctx))
}

// Bounds returns the dialog rectangle on the canvas. ok is false while the
// modal is closed or the canvas size is unknown.
func (m *Modal) Bounds(ctx RenderContext) (x, y, width, height int, ok bool) {
	if !m.controller.IsOpen() || ctx.Width <= 0 || ctx.Height <= 0 {
		return 0, 0, 0, 0, false
	}
	width, height = lipgloss.Size(m.Dialog(ctx))
	g := placement.Calculate(m.spec)
	if h, v, anchored := m.spec.Anchor(); anchored {
		top, right, bottom, left := marginCells(g.Margin, ctx.Width, ctx.Height)
		x = anchorOffset(ctx.Width-(width+left+right), h) + left
		y = anchorOffset(ctx.Height-(height+top+bottom), v) + top
		return x, y, width, height, true
	}
	x, y = g.Origin(ctx.Width, ctx.Height, width, height)
	return x, y, width, height, true
}

// anchorOffset is the leading gap lipgloss.Place leaves before a box at pos
// when gap spare cells remain on the axis.
func anchorOffset(gap int, pos lipgloss.Position) int {
	switch {
	case gap <= 0, pos <= lipgloss.Left:
		return 0
	case pos >= lipgloss.Right:
		return gap
	}
	return gap - int(math.Round(float64(gap)*float64(pos)))
}

// marginCells resolves margins to cells. Unresolvable lengths count as zero.
func marginCells(mg placement.Margins, canvasW, canvasH int) (top, right, bottom, left int) {
	cells := func(l placement.Length, total int) int {
		n, _ := l.Cells(total)
		return max(n, 0)
	}
	return cells(mg.Top, canvasH), cells(mg.Right, canvasW), cells(mg.Bottom, canvasH), cells(mg.Left, canvasW)
}

// HitTest returns the node under the cell, the dialog or the backdrop.
func (m *Modal) HitTest(ctx RenderContext, cx, cy int) overlay.Node {
	x, y, w, h, ok := m.Bounds(ctx)
	if ok && cx >= x && cx < x+w && cy >= y && cy < y+h {
		return m.dialog
	}
	return m.backdrop
}

// ClickAt delivers a click at a canvas cell to the backdrop handler and
// reports whether it requested dismissal.
func (m *Modal) ClickAt(ctx RenderContext, cx, cy int) bool {
	return m.controller.HandleBackdropClick(overlay.ClickEvent{
		Target:        m.HitTest(ctx, cx, cy),
		CurrentTarget: m.backdrop,
	})
}

func (m *Modal) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the dialog over a canvas-sized backdrop, or
// nothing while closed. Preset placements are laid out by lipgloss.Place at
// the preset's anchor; offsets are applied as margins otherwise.
func (m *Modal) ViewWithContext(ctx RenderContext) string {
	if !m.controller.IsOpen() {
		return ""
	}
	dialog := m.Dialog(ctx)
	x, y, _, _, ok := m.Bounds(ctx)
	if !ok {
		return dialog
	}
	backdrop := ctx.Stylesheet().Apply(lipgloss.NewStyle(), ctx.Theme, m.controller.BackdropClasses())

	if h, v, anchored := m.spec.Anchor(); anchored {
		top, right, bottom, left := marginCells(placement.Calculate(m.spec).Margin, ctx.Width, ctx.Height)
		boxed := lipgloss.NewStyle().Margin(top, right, bottom, left).Render(dialog)
		return backdrop.Render(lipgloss.Place(ctx.Width, ctx.Height, h, v, boxed))
	}

	placed := lipgloss.NewStyle().MarginLeft(x).MarginTop(y).Render(dialog)
	return backdrop.Render(lipgloss.Place(ctx.Width, ctx.Height, lipgloss.Left, lipgloss.Top, placed))
}
