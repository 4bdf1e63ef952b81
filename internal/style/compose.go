// Package style composes declarative style configurations into ordered class
// tokens of the form <component>--<category>[-<value>].
package style

import (
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/spacing"
)

// Separator joins a component name and a category.
const Separator = "--"

// Composer turns a Configuration into class tokens for one component.
//
// In overlay mode max-width, width, align and the default margin are not
// emitted; placement and overlay sizing govern those instead.
type Composer struct {
	Component string
	Overlay   bool
}

// NewComposer returns a Composer for component.
func NewComposer(component string) Composer {
	return Composer{Component: component}
}

// ForOverlay returns a copy of c in overlay rendering mode.
func (c Composer) ForOverlay() Composer {
	c.Overlay = true
	return c
}

// Compose returns the tokens for cfg in canonical order: layout, spacing,
// appearance, border, dimension, overflow, position, opacity,
// transition/hover, state. Runtime state names (for example "open" or
// "success") are appended to the state group after the dark flag.
//
// Values are not validated; an unknown value still yields a token.
func (c Composer) Compose(cfg Configuration, states ...string) []string {
	e := newEmitter(c.Component)

	c.layout(e, cfg)
	c.spacing(e, spacing.Resolve(cfg.Spacing))

	e.value("rounded", string(cfg.Rounded))
	e.value("shadow", string(cfg.Shadow))
	e.value("bg", string(cfg.Background))

	e.value("border", cfg.BorderWidth)
	e.value("border-color", string(cfg.BorderColor))
	e.value("border-style", string(cfg.BorderStyle))

	e.value("size", string(cfg.Size))
	e.value("min-h", cfg.MinHeight)
	e.value("max-h", cfg.MaxHeight)

	e.value("overflow-x", string(cfg.OverflowX))
	e.value("overflow-y", string(cfg.OverflowY))

	e.value("position", string(cfg.Position))
	e.value("z", cfg.ZIndex)

	e.value("opacity", cfg.Opacity)

	e.value("transition", string(cfg.Transition))
	e.value("hover", string(cfg.Hover))

	e.flag("dark", cfg.Dark)
	for _, state := range states {
		e.flag(state, state != "")
	}

	return e.tokens
}

// Classes joins the composed tokens with single spaces.
func (c Composer) Classes(cfg Configuration, states ...string) string {
	return strings.Join(c.Compose(cfg, states...), " ")
}

func (c Composer) layout(e *emitter, cfg Configuration) {
	e.bare(string(cfg.Layout))

	if !c.Overlay {
		e.value("max-width", string(cfg.MaxWidth))
		e.value("width", cfg.Width)
		e.value("align", string(cfg.Align))
	}

	if cfg.Layout == LayoutFlex || cfg.Layout == LayoutGrid {
		e.value("gap", cfg.Gap)
	}
	e.value("text", string(cfg.TextAlign))

	if cfg.Layout == LayoutFlex {
		e.value("items", string(cfg.AlignItems))
		e.value("justify", string(cfg.JustifyContent))
		e.value("direction", string(cfg.FlexDirection))
		e.value("wrap", string(cfg.FlexWrap))
	}
	if cfg.Layout == LayoutGrid {
		e.value("cols", cfg.Columns)
	}
	if cfg.Layout == LayoutStack {
		e.flag("divided", cfg.Divided)
	}
}

func (c Composer) spacing(e *emitter, s spacing.Override) {
	e.flag("padding", s.Padding)
	e.value("padding-x", s.PaddingX)
	e.value("padding-y", s.PaddingY)

	if !c.Overlay {
		e.flag("margin", s.Margin)
	}
	e.value("margin-x", s.MarginX)
	e.value("margin-y", s.MarginY)
}

// emitter accumulates tokens, dropping empties and duplicates.
type emitter struct {
	prefix string
	tokens []string
	seen   map[string]struct{}
}

func newEmitter(component string) *emitter {
	return &emitter{
		prefix: component + Separator,
		tokens: make([]string, 0, 16),
		seen:   make(map[string]struct{}, 16),
	}
}

func (e *emitter) push(token string) {
	if _, ok := e.seen[token]; ok {
		return
	}
	e.seen[token] = struct{}{}
	e.tokens = append(e.tokens, token)
}

// bare emits <component>--<value>; used by the layout dimension.
func (e *emitter) bare(value string) {
	if value == "" {
		return
	}
	e.push(e.prefix + value)
}

func (e *emitter) value(category, value string) {
	if value == "" {
		return
	}
	e.push(e.prefix + category + "-" + value)
}

func (e *emitter) flag(category string, on bool) {
	if !on {
		return
	}
	e.push(e.prefix + category)
}
