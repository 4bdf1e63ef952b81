package showcase

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/internal/ui/components"
)

// View renders the showcase. An open modal covers the whole screen.
func (m Model) View() string {
	ctx := m.renderContext()
	if m.overlay.IsOpen() {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.modal.ViewWithContext(ctx),
			helpLine(m.keys.modalHelp()),
		)
	}

	fb := m.button.Feedback()
	if fb.Busy() {
		m.button.WithBusyIndicator(m.spinner.View())
	}

	status := fmt.Sprintf("phase: %s  busy: %t  disabled: %t  scroll locked: %t",
		fb.Phase(), fb.Busy(), fb.Disabled(), m.ScrollLocked())

	body := components.VStack(
		components.NewHeader("Prism showcase").WithSubtitle(m.s.status),
		components.NewDivider(),
		m.button,
		components.CodeText(strings.Join(m.button.Tokens(), " ")),
		components.SubtitleText(status),
	).WithGap(1)

	return lipgloss.JoinVertical(lipgloss.Left,
		body.ViewWithContext(ctx.WithConstraints(components.WithMaxWidth(m.width))),
		"",
		helpLine(m.keys.mainHelp()),
	)
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return lipgloss.NewStyle().Faint(true).Render(strings.Join(parts, " • "))
}
