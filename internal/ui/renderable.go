// Package ui holds the interfaces shared by terminal views.
package ui

// Renderable is anything that renders to a terminal string.
type Renderable interface {
	View() string
}
