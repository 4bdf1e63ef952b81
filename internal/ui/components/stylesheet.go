package components

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Rule turns the value part of a token into a style function. It returns
// nil for values it does not support.
type Rule func(value string) StyleFunc

// Stylesheet maps class tokens onto terminal styling. A token is looked up
// by its category after the component prefix; tokens without a rule are
// ignored.
type Stylesheet struct {
	flags      map[string]StyleFunc
	rules      map[string]Rule
	categories []string
}

// NewStylesheet returns an empty stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{
		flags: make(map[string]StyleFunc),
		rules: make(map[string]Rule),
	}
}

// Flag registers a value-less token such as "busy" or "padding".
func (s *Stylesheet) Flag(name string, fn StyleFunc) *Stylesheet {
	s.flags[name] = fn
	return s
}

// Rule registers a valued category such as "padding-x".
func (s *Stylesheet) Rule(category string, rule Rule) *Stylesheet {
	if _, exists := s.rules[category]; !exists {
		s.categories = append(s.categories, category)
		// Longest first, so "border-color" wins over "border".
		sort.SliceStable(s.categories, func(i, j int) bool {
			return len(s.categories[i]) > len(s.categories[j])
		})
	}
	s.rules[category] = rule
	return s
}

// Lookup returns the style function for token.
func (s *Stylesheet) Lookup(token string) (StyleFunc, bool) {
	_, rest, ok := strings.Cut(token, style.Separator)
	if !ok || rest == "" {
		return nil, false
	}
	if fn, ok := s.flags[rest]; ok {
		return fn, true
	}
	for _, category := range s.categories {
		value, ok := strings.CutPrefix(rest, category+"-")
		if !ok || value == "" {
			continue
		}
		if fn := s.rules[category](value); fn != nil {
			return fn, true
		}
		return nil, false
	}
	return nil, false
}

// Strategy returns a strategy applying every known token in order.
func (s *Stylesheet) Strategy(tokens []string) StyleStrategy {
	funcs := make([]StyleFunc, 0, len(tokens))
	for _, token := range tokens {
		if fn, ok := s.Lookup(token); ok {
			funcs = append(funcs, fn)
		}
	}
	return NewCompositeStrategy(funcs...)
}

// Apply styles base with tokens.
func (s *Stylesheet) Apply(base lipgloss.Style, theme Theme, tokens []string) lipgloss.Style {
	return s.Strategy(tokens).Apply(base, theme)
}

var (
	defaultSheet     *Stylesheet
	defaultSheetOnce sync.Once
)

// DefaultStylesheet returns the shared built-in stylesheet. It must not be
// modified; build a new one with NewDefaultStylesheet to customise.
func DefaultStylesheet() *Stylesheet {
	defaultSheetOnce.Do(func() {
		defaultSheet = NewDefaultStylesheet()
	})
	return defaultSheet
}

var slotNames = map[string]PaletteSlot{
	"primary":   PalettePrimary,
	"secondary": PaletteSecondary,
	"surface":   PaletteSurface,
	"white":     PaletteSurface,
	"light":     PaletteSurface,
	"dark":      PaletteNeutral,
	"medium":    PaletteNeutral,
	"muted":     PaletteNeutral,
	"neutral":   PaletteNeutral,
	"success":   PaletteSuccess,
	"warning":   PaletteWarning,
	"danger":    PaletteDanger,
	"error":     PaletteDanger,
	"info":      PaletteInfo,
}

var borderStyles = map[string]BorderVariant{
	"none":   BorderVariantNone,
	"solid":  BorderVariantNormal,
	"dashed": BorderVariantDashed,
	"dotted": BorderVariantDotted,
	"double": BorderVariantDouble,
}

var textAligns = map[string]lipgloss.Position{
	"left":    lipgloss.Left,
	"center":  lipgloss.Center,
	"right":   lipgloss.Right,
	"justify": lipgloss.Left,
}

// NewDefaultStylesheet builds the built-in token rules.
func NewDefaultStylesheet() *Stylesheet {
	s := NewStylesheet()

	s.Flag("padding", Padding(SpacingSizeMedium))
	s.Flag("margin", Margin(SpacingSizeSmall))
	s.Rule("padding", spaced(Padding, func(b lipgloss.Style, n int) lipgloss.Style { return b.Padding(n) }))
	s.Rule("padding-x", spaced(PaddingX, func(b lipgloss.Style, n int) lipgloss.Style { return b.PaddingLeft(n).PaddingRight(n) }))
	s.Rule("padding-y", spaced(PaddingY, func(b lipgloss.Style, n int) lipgloss.Style { return b.PaddingTop(n).PaddingBottom(n) }))
	s.Rule("margin", spaced(Margin, func(b lipgloss.Style, n int) lipgloss.Style { return b.Margin(n) }))
	s.Rule("margin-x", spaced(MarginX, func(b lipgloss.Style, n int) lipgloss.Style { return b.MarginLeft(n).MarginRight(n) }))
	s.Rule("margin-y", spaced(MarginY, func(b lipgloss.Style, n int) lipgloss.Style { return b.MarginTop(n).MarginBottom(n) }))

	s.Rule("width", spaced(Width, func(b lipgloss.Style, n int) lipgloss.Style { return b.Width(n) }))
	s.Rule("max-width", sized(MaxWidth))
	s.Rule("size", sized(Width))
	s.Rule("text", func(value string) StyleFunc {
		pos, ok := textAligns[value]
		if !ok {
			return nil
		}
		return func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Align(pos) }
	})

	s.Rule("rounded", func(value string) StyleFunc {
		if value == "none" {
			return nil
		}
		return Border(BorderVariantRounded)
	})
	s.Rule("bg", func(value string) StyleFunc {
		slot, ok := slotNames[value]
		if !ok {
			return nil
		}
		return Background(slot)
	})
	s.Rule("border", func(value string) StyleFunc {
		if value == "0" {
			return Border(BorderVariantNone)
		}
		return func(base lipgloss.Style, theme Theme) lipgloss.Style {
			if base.GetBorderStyle() == (lipgloss.Border{}) {
				return base.Border(theme.Borders.Normal)
			}
			return base.BorderTop(true).BorderRight(true).BorderBottom(true).BorderLeft(true)
		}
	})
	s.Rule("border-color", func(value string) StyleFunc {
		slot, ok := slotNames[value]
		if !ok {
			return nil
		}
		return BorderColor(slot)
	})
	s.Rule("border-style", func(value string) StyleFunc {
		variant, ok := borderStyles[value]
		if !ok {
			return nil
		}
		return Border(variant)
	})

	s.Rule("min-h", cells(func(base lipgloss.Style, n int) lipgloss.Style { return base.Height(n) }))
	s.Rule("max-h", cells(func(base lipgloss.Style, n int) lipgloss.Style { return base.MaxHeight(n) }))
	s.Rule("opacity", func(value string) StyleFunc {
		n, err := strconv.Atoi(value)
		if err != nil || n >= 50 {
			return nil
		}
		return func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Faint(true) }
	})

	for name, slot := range slotNames {
		s.Flag(name, Background(slot))
	}
	s.Flag("disabled", func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Faint(true) })
	s.Flag("busy", func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Italic(true) })
	s.Flag("feedback", func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Bold(true) })

	return s
}

func sized(fn func(SpacingSize) StyleFunc) Rule {
	return func(value string) StyleFunc {
		size, ok := ParseSpacingSize(value)
		if !ok {
			return nil
		}
		return fn(size)
	}
}

// spaced accepts either a scale name or a plain cell count.
func spaced(fn func(SpacingSize) StyleFunc, apply func(lipgloss.Style, int) lipgloss.Style) Rule {
	named, counted := sized(fn), cells(apply)
	return func(value string) StyleFunc {
		if f := named(value); f != nil {
			return f
		}
		return counted(value)
	}
}

func cells(fn func(lipgloss.Style, int) lipgloss.Style) Rule {
	return func(value string) StyleFunc {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil
		}
		return func(base lipgloss.Style, _ Theme) lipgloss.Style { return fn(base, n) }
	}
}
