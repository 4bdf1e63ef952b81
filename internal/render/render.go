// Package render assembles the presentation record of one element: class
// tokens, inline placement style and the attributes allowed to pass through.
package render

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/placement"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Request describes one element to render.
type Request struct {
	Component string
	Overlay   bool
	Style     style.Configuration
	// States are runtime state names appended after the configured tokens.
	States    []string
	Placement *placement.Spec
	Attrs     map[string]string
}

// Output is the rendered presentation of an element.
type Output struct {
	Tokens   []string
	Class    string
	Geometry placement.Geometry
	Style    map[string]string
	Attrs    map[string]string
}

var passThrough = map[string]struct{}{
	"id":       {},
	"title":    {},
	"role":     {},
	"tabindex": {},
	"name":     {},
}

var passThroughPrefixes = []string{"aria-", "data-"}

// Build composes r into an Output. Spacing is resolved by the composer, so
// an axis override always suppresses its generic family token.
func Build(r Request) Output {
	composer := style.NewComposer(r.Component)
	if r.Overlay {
		composer = composer.ForOverlay()
	}

	tokens := composer.Compose(r.Style, r.States...)
	out := Output{
		Tokens: tokens,
		Class:  strings.Join(tokens, " "),
		Attrs:  FilterAttrs(r.Attrs),
	}
	if r.Placement != nil {
		out.Geometry = placement.Calculate(*r.Placement)
		out.Style = out.Geometry.Style()
	}
	return out
}

// AllowedAttr reports whether an attribute name may be forwarded to the
// rendered element.
func AllowedAttr(name string) bool {
	name = strings.ToLower(name)
	if _, ok := passThrough[name]; ok {
		return true
	}
	for _, prefix := range passThroughPrefixes {
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
			return true
		}
	}
	return false
}

// FilterAttrs returns the allowed subset of attrs, or nil if none remain.
func FilterAttrs(attrs map[string]string) map[string]string {
	var out map[string]string
	for k, v := range attrs {
		if !AllowedAttr(k) {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[k] = v
	}
	return out
}

// AttrNames returns the sorted keys of attrs.
func AttrNames(attrs map[string]string) []string {
	names := make([]string, 0, len(attrs))
	for k := range attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
