package platform

import "github.com/charmbracelet/lipgloss"

// ColorScheme is a dark/light preference signal. Consumers read it once at
// init and subscribe for changes.
type ColorScheme interface {
	Dark() bool
	Subscribe(func(dark bool)) (unsubscribe func())
}

// StaticScheme is a ColorScheme whose value changes only through Set.
type StaticScheme struct {
	dark   bool
	nextID int
	subs   map[int]func(bool)
	order  []int
}

// NewStaticScheme returns a scheme starting at dark.
func NewStaticScheme(dark bool) *StaticScheme {
	return &StaticScheme{dark: dark, subs: make(map[int]func(bool))}
}

// TerminalScheme seeds a scheme from the terminal's background colour.
func TerminalScheme() *StaticScheme {
	return NewStaticScheme(lipgloss.HasDarkBackground())
}

func (s *StaticScheme) Dark() bool {
	return s.dark
}

func (s *StaticScheme) Subscribe(fn func(bool)) func() {
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	s.order = append(s.order, id)
	return func() {
		if _, ok := s.subs[id]; !ok {
			return
		}
		delete(s.subs, id)
		for i, other := range s.order {
			if other == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// Set updates the preference and notifies subscribers, in subscription
// order, when it changes.
func (s *StaticScheme) Set(dark bool) {
	if s.dark == dark {
		return
	}
	s.dark = dark
	ids := append([]int(nil), s.order...)
	for _, id := range ids {
		if fn, ok := s.subs[id]; ok {
			fn(dark)
		}
	}
}
