// Package placement turns named position presets, explicit offsets and
// margin options into a concrete geometry record.
package placement

import (
	"github.com/charmbracelet/lipgloss"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

// Mode is the positioning mode of an element.
type Mode string

const (
	ModeStatic   Mode = "static"
	ModeRelative Mode = "relative"
	ModeAbsolute Mode = "absolute"
	ModeFixed    Mode = "fixed"
	ModeSticky   Mode = "sticky"
)

// Placement names one of nine anchor points, or Custom for explicit offsets.
type Placement string

const (
	TopLeft      Placement = "top-left"
	TopCenter    Placement = "top-center"
	TopRight     Placement = "top-right"
	CenterLeft   Placement = "center-left"
	Center       Placement = "center"
	CenterRight  Placement = "center-right"
	BottomLeft   Placement = "bottom-left"
	BottomCenter Placement = "bottom-center"
	BottomRight  Placement = "bottom-right"
	Custom       Placement = "custom"
)

const (
	translateX  = "translateX(-50%)"
	translateY  = "translateY(-50%)"
	translateXY = "translate(-50%,-50%)"
)

type preset struct {
	top, right, bottom, left Length
	transform                string
	horizontal, vertical     lipgloss.Position
}

var (
	zero = Raw("0")
	half = Percent(50)
)

func lookupPreset(p Placement) (preset, bool) {
	switch p {
	case TopLeft:
		return preset{top: zero, left: zero, horizontal: lipgloss.Left, vertical: lipgloss.Top}, true
	case TopCenter:
		return preset{top: zero, left: half, transform: translateX, horizontal: lipgloss.Center, vertical: lipgloss.Top}, true
	case TopRight:
		return preset{top: zero, right: zero, horizontal: lipgloss.Right, vertical: lipgloss.Top}, true
	case CenterLeft:
		return preset{top: half, left: zero, transform: translateY, horizontal: lipgloss.Left, vertical: lipgloss.Center}, true
	case Center:
		return preset{top: half, left: half, transform: translateXY, horizontal: lipgloss.Center, vertical: lipgloss.Center}, true
	case CenterRight:
		return preset{top: half, right: zero, transform: translateY, horizontal: lipgloss.Right, vertical: lipgloss.Center}, true
	case BottomLeft:
		return preset{bottom: zero, left: zero, horizontal: lipgloss.Left, vertical: lipgloss.Bottom}, true
	case BottomCenter:
		return preset{bottom: zero, left: half, transform: translateX, horizontal: lipgloss.Center, vertical: lipgloss.Bottom}, true
	case BottomRight:
		return preset{bottom: zero, right: zero, horizontal: lipgloss.Right, vertical: lipgloss.Bottom}, true
	case Custom, "":
		return preset{}, false
	default:
		return preset{}, false
	}
}

// ParsePlacement returns the Placement named s, or an unknown-variant error.
func ParsePlacement(s string) (Placement, error) {
	p := Placement(s)
	if p == Custom {
		return p, nil
	}
	if _, ok := lookupPreset(p); !ok {
		return "", prismerrors.UnknownVariant("placement", s)
	}
	return p, nil
}

// Anchor maps a preset onto lipgloss horizontal and vertical positions.
// Custom and unknown placements report false.
func (p Placement) Anchor() (horizontal, vertical lipgloss.Position, ok bool) {
	pr, ok := lookupPreset(p)
	if !ok {
		return lipgloss.Left, lipgloss.Top, false
	}
	return pr.horizontal, pr.vertical, true
}

// Anchor reports the lipgloss positions of a preset placed purely by its
// preset: absolute or fixed mode with no explicit side offset. Anything else
// reports false and is positioned through Geometry.Origin.
func (s Spec) Anchor() (horizontal, vertical lipgloss.Position, ok bool) {
	if s.Mode != ModeAbsolute && s.Mode != ModeFixed {
		return lipgloss.Left, lipgloss.Top, false
	}
	if s.Top.IsSet() || s.Right.IsSet() || s.Bottom.IsSet() || s.Left.IsSet() {
		return lipgloss.Left, lipgloss.Top, false
	}
	return s.Placement.Anchor()
}

// Spec is the placement input of an element.
type Spec struct {
	Mode      Mode      `yaml:"position,omitempty"`
	Placement Placement `yaml:"placement,omitempty"`

	Top    Length `yaml:"top,omitempty"`
	Right  Length `yaml:"right,omitempty"`
	Bottom Length `yaml:"bottom,omitempty"`
	Left   Length `yaml:"left,omitempty"`

	ZIndex *int `yaml:"z_index,omitempty"`

	Margin       Length `yaml:"margin,omitempty"`
	MarginX      Length `yaml:"margin_x,omitempty"`
	MarginY      Length `yaml:"margin_y,omitempty"`
	MarginTop    Length `yaml:"margin_top,omitempty"`
	MarginRight  Length `yaml:"margin_right,omitempty"`
	MarginBottom Length `yaml:"margin_bottom,omitempty"`
	MarginLeft   Length `yaml:"margin_left,omitempty"`
}

// Validate reports the first unknown mode, unknown placement or malformed
// length in s.
func (s Spec) Validate() error {
	switch s.Mode {
	case "", ModeStatic, ModeRelative, ModeAbsolute, ModeFixed, ModeSticky:
	default:
		return prismerrors.UnknownVariant("position", string(s.Mode))
	}
	if s.Placement != "" {
		if _, err := ParsePlacement(string(s.Placement)); err != nil {
			return err
		}
	}
	lengths := []struct {
		field string
		value Length
	}{
		{"top", s.Top}, {"right", s.Right}, {"bottom", s.Bottom}, {"left", s.Left},
		{"margin", s.Margin}, {"margin_x", s.MarginX}, {"margin_y", s.MarginY},
		{"margin_top", s.MarginTop}, {"margin_right", s.MarginRight},
		{"margin_bottom", s.MarginBottom}, {"margin_left", s.MarginLeft},
	}
	for _, l := range lengths {
		if !l.value.Valid() {
			return prismerrors.NewInvalidConfiguration(prismerrors.KindMalformedLength, l.field, l.value.String())
		}
	}
	return nil
}

// Margins holds resolved per-side margins.
type Margins struct {
	Top    Length `yaml:"top,omitempty"`
	Right  Length `yaml:"right,omitempty"`
	Bottom Length `yaml:"bottom,omitempty"`
	Left   Length `yaml:"left,omitempty"`
}

// Geometry is the resolved inline positioning of an element.
type Geometry struct {
	Top       Length  `yaml:"top,omitempty"`
	Right     Length  `yaml:"right,omitempty"`
	Bottom    Length  `yaml:"bottom,omitempty"`
	Left      Length  `yaml:"left,omitempty"`
	Transform string  `yaml:"transform,omitempty"`
	ZIndex    *int    `yaml:"z_index,omitempty"`
	Margin    Margins `yaml:"margin,omitempty"`
}

// Calculate resolves s into a Geometry.
//
// Presets only apply to absolute and fixed modes. An explicit side offset
// replaces the preset value for that side alone. Static mode yields no
// offsets or transform. Margins resolve per side, then per axis, then
// uniformly, each step overwriting the previous one.
func Calculate(s Spec) Geometry {
	var g Geometry

	if s.Mode != "" && s.Mode != ModeStatic {
		if s.Mode == ModeAbsolute || s.Mode == ModeFixed {
			if pr, ok := lookupPreset(s.Placement); ok {
				g.Top, g.Right, g.Bottom, g.Left = pr.top, pr.right, pr.bottom, pr.left
				g.Transform = pr.transform
			}
		}
		g.Top = override(g.Top, s.Top)
		g.Right = override(g.Right, s.Right)
		g.Bottom = override(g.Bottom, s.Bottom)
		g.Left = override(g.Left, s.Left)
	}

	if s.ZIndex != nil {
		z := *s.ZIndex
		g.ZIndex = &z
	}

	g.Margin = resolveMargins(s)
	return g
}

func resolveMargins(s Spec) Margins {
	m := Margins{
		Top:    s.MarginTop,
		Right:  s.MarginRight,
		Bottom: s.MarginBottom,
		Left:   s.MarginLeft,
	}
	if s.MarginX.IsSet() {
		m.Left, m.Right = s.MarginX, s.MarginX
	}
	if s.MarginY.IsSet() {
		m.Top, m.Bottom = s.MarginY, s.MarginY
	}
	if s.Margin.IsSet() {
		m = Margins{Top: s.Margin, Right: s.Margin, Bottom: s.Margin, Left: s.Margin}
	}
	return m
}

func override(current, explicit Length) Length {
	if explicit.IsSet() {
		return explicit
	}
	return current
}
