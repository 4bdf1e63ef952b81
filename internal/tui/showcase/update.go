package showcase

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/prism/internal/platform"
)

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.Close()
			return m, tea.Quit
		}
		if m.overlay.IsOpen() {
			m.handleModalKey(msg)
		} else {
			cmd = m.handleKey(msg)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.overlay.IsOpen() {
			m.modal.ClickAt(m.renderContext(), msg.X, msg.Y)
		}

	case timerFiredMsg:
		m.scheduler.Fire(msg.id)

	case spinner.TickMsg:
		if m.button.Feedback().Busy() {
			m.spinner, cmd = m.spinner.Update(msg)
		}
	}

	m.syncOverlay()
	return m, tea.Batch(cmd, m.scheduler.Drain())
}

func (m Model) handleModalKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.keyBus.Dispatch(platform.KeyEvent{Key: platform.KeyEscape})
	case key.Matches(msg, m.keys.Confirm):
		m.s.modalOpen = false
		m.s.status = "changes discarded"
	case key.Matches(msg, m.keys.Cancel):
		m.overlay.RequestClose()
	}
}

func (m Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	fb := m.button.Feedback()

	switch {
	case key.Matches(msg, m.keys.Success):
		fb.TriggerSuccess()
	case key.Matches(msg, m.keys.Error):
		fb.TriggerError()
	case key.Matches(msg, m.keys.Click):
		return m.click()
	case key.Matches(msg, m.keys.Busy):
		fb.SetBusy(!fb.Busy())
		if fb.Busy() {
			return m.spinner.Tick
		}
	case key.Matches(msg, m.keys.Disable):
		fb.SetDisabled(!fb.Disabled())
	case key.Matches(msg, m.keys.Variant):
		m.s.variant = (m.s.variant + 1) % len(variants)
		fb.SetVariant(variants[m.s.variant])
	case key.Matches(msg, m.keys.Open):
		m.s.modalOpen = true
		m.s.status = "modal open"
	case key.Matches(msg, m.keys.Scheme):
		m.scheme.Set(!m.scheme.Dark())
	}
	return nil
}

// click starts the simulated action behind the button: busy for a moment,
// then alternating success and error feedback.
func (m Model) click() tea.Cmd {
	fb := m.button.Feedback()
	accepted := m.button.Click(func() {
		m.s.clicks++
		fb.SetBusy(true)
		m.s.status = "working"
		m.scheduler.AfterFunc(actionDelay, func() {
			m.finishAction()
		})
	})
	if !accepted {
		m.s.status = "click ignored"
		return nil
	}
	return m.spinner.Tick
}

func (m Model) finishAction() {
	fb := m.button.Feedback()
	fb.SetBusy(false)
	if m.s.clicks%2 == 1 {
		fb.TriggerSuccess()
	} else {
		fb.TriggerError()
	}
}
