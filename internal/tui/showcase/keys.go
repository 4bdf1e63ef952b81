package showcase

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Success key.Binding
	Error   key.Binding
	Click   key.Binding
	Busy    key.Binding
	Disable key.Binding
	Variant key.Binding
	Open    key.Binding
	Scheme  key.Binding
	Dismiss key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Success: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "success")),
		Error:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "error")),
		Click:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "click")),
		Busy:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "busy")),
		Disable: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "disable")),
		Variant: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "variant")),
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open modal")),
		Scheme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Confirm: key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "cancel")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) mainHelp() []key.Binding {
	return []key.Binding{k.Click, k.Success, k.Error, k.Busy, k.Disable, k.Variant, k.Open, k.Scheme, k.Quit}
}

func (k keyMap) modalHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel, k.Dismiss}
}
