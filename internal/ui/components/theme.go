package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/internal/platform"
)

// SpacingSize enumerates the spacing scale shared by padding, margin and gap.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
	SpacingSizeDoubleExtraLarge
)

const spacingSizeCount = int(SpacingSizeDoubleExtraLarge) + 1

type spacingTable [spacingSizeCount]int

var sizeNames = map[string]SpacingSize{
	"none": SpacingSizeNone,
	"0":    SpacingSizeNone,
	"xs":   SpacingSizeExtraSmall,
	"sm":   SpacingSizeSmall,
	"md":   SpacingSizeMedium,
	"lg":   SpacingSizeLarge,
	"xl":   SpacingSizeExtraLarge,
	"2xl":  SpacingSizeDoubleExtraLarge,
}

// ParseSpacingSize maps a token value such as "md" onto the scale.
func ParseSpacingSize(name string) (SpacingSize, bool) {
	size, ok := sizeNames[name]
	return size, ok
}

// SpacingConfig stores the cell scales used for padding, margin and widths.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
	Width   spacingTable
}

// TypographyVariant selects a typography preset.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantCode
	TypographyVariantEmphasis
)

// TypographyScale contains the typography presets.
type TypographyScale struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// BorderVariant selects a border from the theme.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
	BorderVariantDashed
	BorderVariantDotted
)

// BorderSet groups the border strokes a theme can draw.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
	Dashed  lipgloss.Border
	Dotted  lipgloss.Border
}

// ColourSet is a semantic colour with its readable foreground and a muted
// accent. All colours adapt to light and dark terminals.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by the stylesheet.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// PaletteSlot selects one ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Theme is an immutable set of styling data. Modifications return copies.
type Theme struct {
	Dark       bool
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
}

// Normalize fills zero spacing tables with the defaults.
func (t Theme) Normalize() Theme {
	defaults := defaultSpacing()
	if t.Spacing.Padding == (spacingTable{}) {
		t.Spacing.Padding = defaults.Padding
	}
	if t.Spacing.Margin == (spacingTable{}) {
		t.Spacing.Margin = defaults.Margin
	}
	if t.Spacing.Width == (spacingTable{}) {
		t.Spacing.Width = defaults.Width
	}
	return t
}

func defaultSpacing() SpacingConfig {
	return SpacingConfig{
		Padding: spacingTable{0, 1, 1, 2, 3, 4, 6},
		Margin:  spacingTable{0, 1, 1, 2, 3, 4, 6},
		Width:   spacingTable{0, 16, 28, 44, 60, 76, 92},
	}
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary:   ColourSet{Base: ac("#3b82f6", "#60a5fa"), OnBase: ac("#f8fafc", "#0b1120"), Muted: ac("#2563eb", "#1d4ed8")},
		Secondary: ColourSet{Base: ac("#a855f7", "#c084fc"), OnBase: ac("#f8fafc", "#1f2937"), Muted: ac("#7c3aed", "#6b21a8")},
		Surface:   ColourSet{Base: ac("#f9fafb", "#111827"), OnBase: ac("#111827", "#f9fafb"), Muted: ac("#e2e8f0", "#1f2937")},
		Success:   ColourSet{Base: ac("#22c55e", "#4ade80"), OnBase: ac("#052e16", "#022c22"), Muted: ac("#16a34a", "#15803d")},
		Warning:   ColourSet{Base: ac("#eab308", "#facc15"), OnBase: ac("#422006", "#422006"), Muted: ac("#ca8a04", "#a16207")},
		Danger:    ColourSet{Base: ac("#ef4444", "#f87171"), OnBase: ac("#f8fafc", "#450a0a"), Muted: ac("#dc2626", "#b91c1c")},
		Info:      ColourSet{Base: ac("#06b6d4", "#22d3ee"), OnBase: ac("#083344", "#04121a"), Muted: ac("#0891b2", "#0e7490")},
		Neutral:   ColourSet{Base: ac("#64748b", "#94a3b8"), OnBase: ac("#f1f5f9", "#0f172a"), Muted: ac("#cbd5e1", "#334155")},
	}

	theme := Theme{
		Palette:    palette,
		Borders:    defaultBorders(),
		Spacing:    defaultSpacing(),
		Typography: defaultTypography(palette),
	}
	return theme.Normalize()
}

// DarkTheme returns the theme for dark terminals.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Dark = true
	theme.Palette.Surface = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase: lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:  lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
	}
	theme.Palette.Neutral = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase: lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:  lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
	}
	theme.Typography = defaultTypography(theme.Palette)
	return theme.Normalize()
}

// LightTheme returns the theme for light terminals.
func LightTheme() Theme {
	return DefaultTheme()
}

// ThemeFor picks the light or dark theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

// FollowScheme calls apply with the theme matching scheme now and again on
// every preference change. The returned function stops following.
func FollowScheme(scheme platform.ColorScheme, apply func(Theme)) func() {
	apply(ThemeFor(scheme.Dark()))
	return scheme.Subscribe(func(dark bool) {
		apply(ThemeFor(dark))
	})
}

func defaultBorders() BorderSet {
	dashed := lipgloss.NormalBorder()
	dashed.Top, dashed.Bottom = "╌", "╌"
	dashed.Left, dashed.Right = "╎", "╎"

	dotted := lipgloss.NormalBorder()
	dotted.Top, dotted.Bottom = "┈", "┈"
	dotted.Left, dotted.Right = "┊", "┊"

	return BorderSet{
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
		Dashed:  dashed,
		Dotted:  dotted,
	}
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return TypographyScale{
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Secondary.Muted).Faint(true),
		Body:     body,
		Code:     body.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: body.Bold(true),
	}
}

// BorderForVariant returns the border stroke for variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantDashed:
		return theme.Borders.Dashed
	case BorderVariantDotted:
		return theme.Borders.Dotted
	default:
		return lipgloss.Border{}
	}
}

// PaddingValue returns the padding cells for size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin cells for size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

// WidthValue returns the width cells for size.
func WidthValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Width, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the typography preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Body
	}
}

// Background applies a semantic background with its readable foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColor colours the border with a semantic slot.
func BorderColor(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Border applies a border stroke from the theme on all sides.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if variant == BorderVariantNone {
			return base.BorderTop(false).BorderRight(false).BorderBottom(false).BorderLeft(false)
		}
		return base.Border(BorderForVariant(theme, variant))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(PaddingValue(theme, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(MarginValue(theme, size))
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := MarginValue(theme, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := MarginValue(theme, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Width fixes the rendered width to a value from the width scale.
func Width(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Width(WidthValue(theme, size))
	}
}

// MaxWidth caps the rendered width at a value from the width scale.
func MaxWidth(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.MaxWidth(WidthValue(theme, size))
	}
}

// Typography inherits a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
