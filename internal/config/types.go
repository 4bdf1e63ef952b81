package config

import (
	"time"

	"github.com/alexisbeaulieu97/prism/internal/placement"
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Document is a presentation document: named elements and the settings
// that govern how they are loaded and rendered.
type Document struct {
	Version  string    `yaml:"version" validate:"required,semver"`
	Name     string    `yaml:"name,omitempty"`
	Settings Settings  `yaml:"settings,omitempty"`
	Elements []Element `yaml:"elements" validate:"required,min=1,dive"`
}

// Settings configures loading and the runtime controllers.
type Settings struct {
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	// Strict rejects values outside the enumerated style and placement
	// domains instead of passing them through.
	Strict           bool          `yaml:"strict,omitempty"`
	FeedbackDuration time.Duration `yaml:"feedback_duration,omitempty" validate:"min=0"`
}

// Element is one styled element of a document. Style and placement values
// are checked only in strict mode.
type Element struct {
	Name      string              `yaml:"name" validate:"required,element_name"`
	Component string              `yaml:"component" validate:"required,element_name"`
	Overlay   bool                `yaml:"overlay,omitempty"`
	States    []string            `yaml:"states,omitempty" validate:"dive,element_name"`
	Style     style.Configuration `yaml:"style,omitempty" validate:"-"`
	Placement *placement.Spec     `yaml:"placement,omitempty" validate:"-"`
	Attrs     map[string]string   `yaml:"attrs,omitempty"`
}

// Element returns the element called name.
func (d *Document) Element(name string) (Element, bool) {
	for _, el := range d.Elements {
		if el.Name == name {
			return el, true
		}
	}
	return Element{}, false
}

// Request converts the element into a render request.
func (e Element) Request() render.Request {
	return render.Request{
		Component: e.Component,
		Overlay:   e.Overlay,
		Style:     e.Style,
		States:    e.States,
		Placement: e.Placement,
		Attrs:     e.Attrs,
	}
}
