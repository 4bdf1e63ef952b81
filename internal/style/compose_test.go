package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/spacing"
)

func TestComposeEmptyConfiguration(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewComposer("box").Compose(Configuration{}))
	assert.Equal(t, "", NewComposer("box").Classes(Configuration{}))
}

func TestComposeFlexScenario(t *testing.T) {
	t.Parallel()

	cfg := Configuration{
		Layout:         LayoutFlex,
		Gap:            "6",
		JustifyContent: JustifyBetween,
		Columns:        "3",
		Divided:        true,
	}

	tokens := NewComposer("container").Compose(cfg)

	assert.Equal(t, []string{
		"container--flex",
		"container--gap-6",
		"container--justify-between",
	}, tokens)
	assert.NotContains(t, tokens, "container--cols-3")
	assert.NotContains(t, tokens, "container--divided")
}

func TestComposeCanonicalOrder(t *testing.T) {
	t.Parallel()

	cfg := Configuration{
		Dark:        true,
		Hover:       HoverLift,
		Transition:  TransitionFast,
		Opacity:     "75",
		ZIndex:      "50",
		Position:    PositionRelative,
		OverflowY:   OverflowAuto,
		OverflowX:   OverflowHidden,
		MaxHeight:   "screen",
		MinHeight:   "10",
		BorderStyle: BorderDashed,
		BorderColor: BorderColorPrimary,
		BorderWidth: "2",
		Background:  BackgroundSurface,
		Shadow:      SizeLG,
		Rounded:     SizeMD,
		Spacing:     spacing.Override{Padding: true, MarginY: "4"},
		TextAlign:   TextCenter,
		Align:       AlignCenter,
		Width:       "320",
		MaxWidth:    SizeLG,
		Layout:      LayoutGrid,
		Columns:     "3",
		Gap:         "2",
	}

	assert.Equal(t, []string{
		"card--grid",
		"card--max-width-lg",
		"card--width-320",
		"card--align-center",
		"card--gap-2",
		"card--text-center",
		"card--cols-3",
		"card--padding",
		"card--margin-y-4",
		"card--rounded-md",
		"card--shadow-lg",
		"card--bg-surface",
		"card--border-2",
		"card--border-color-primary",
		"card--border-style-dashed",
		"card--min-h-10",
		"card--max-h-screen",
		"card--overflow-x-hidden",
		"card--overflow-y-auto",
		"card--position-relative",
		"card--z-50",
		"card--opacity-75",
		"card--transition-fast",
		"card--hover-lift",
		"card--dark",
	}, NewComposer("card").Compose(cfg))
}

func TestComposeFlexOnlyProperties(t *testing.T) {
	t.Parallel()

	flexOnly := Configuration{
		AlignItems:     ItemsCenter,
		JustifyContent: JustifyEnd,
		FlexDirection:  DirectionColumn,
		FlexWrap:       WrapWrap,
		Gap:            "4",
	}

	for _, layout := range []Layout{"", LayoutBlock, LayoutStack, LayoutInline, LayoutGrid} {
		cfg := flexOnly
		cfg.Layout = layout
		tokens := NewComposer("box").Compose(cfg)
		for _, token := range tokens {
			assert.NotContains(t, token, "--items-", "layout %q", layout)
			assert.NotContains(t, token, "--justify-", "layout %q", layout)
			assert.NotContains(t, token, "--direction-", "layout %q", layout)
			assert.NotContains(t, token, "--wrap-", "layout %q", layout)
		}
	}

	flexOnly.Layout = LayoutFlex
	assert.Equal(t, []string{
		"box--flex",
		"box--gap-4",
		"box--items-center",
		"box--justify-end",
		"box--direction-column",
		"box--wrap-wrap",
	}, NewComposer("box").Compose(flexOnly))
}

func TestComposeGapRequiresFlexOrGrid(t *testing.T) {
	t.Parallel()

	for layout, want := range map[Layout]bool{
		"":           false,
		LayoutBlock:  false,
		LayoutStack:  false,
		LayoutInline: false,
		LayoutFlex:   true,
		LayoutGrid:   true,
	} {
		tokens := NewComposer("box").Compose(Configuration{Layout: layout, Gap: "3"})
		assert.Equal(t, want, contains(tokens, "box--gap-3"), "layout %q", layout)
	}
}

func TestComposeStackDivided(t *testing.T) {
	t.Parallel()

	tokens := NewComposer("list").Compose(Configuration{Layout: LayoutStack, Divided: true})
	assert.Equal(t, []string{"list--stack", "list--divided"}, tokens)
}

func TestComposeOverlaySuppressesFlowDimensions(t *testing.T) {
	t.Parallel()

	cfg := Configuration{
		MaxWidth: SizeXL,
		Width:    "640",
		Align:    AlignCenter,
		Size:     SizeMD,
		Spacing:  spacing.Override{Margin: true, Padding: true, MarginX: ""},
	}

	normal := NewComposer("modal").Compose(cfg)
	assert.Contains(t, normal, "modal--max-width-xl")
	assert.Contains(t, normal, "modal--width-640")
	assert.Contains(t, normal, "modal--align-center")
	assert.Contains(t, normal, "modal--margin")

	overlay := NewComposer("modal").ForOverlay().Compose(cfg)
	assert.Equal(t, []string{"modal--padding", "modal--size-md"}, overlay)
}

func TestComposeSpacingAxisSuppressesDefault(t *testing.T) {
	t.Parallel()

	cfg := Configuration{Spacing: spacing.Override{PaddingX: "4", Padding: true}}
	assert.Equal(t, []string{"box--padding-x-4"}, NewComposer("box").Compose(cfg))

	cfg = Configuration{Spacing: spacing.Override{MarginX: "auto", Margin: true, Padding: true}}
	assert.Equal(t, []string{"box--padding", "box--margin-x-auto"}, NewComposer("box").Compose(cfg))
}

func TestComposeUnknownValuesPassThrough(t *testing.T) {
	t.Parallel()

	tokens := NewComposer("box").Compose(Configuration{Shadow: "enormous", Layout: "masonry"})
	assert.Equal(t, []string{"box--masonry", "box--shadow-enormous"}, tokens)
}

func TestComposeStatesAndDedup(t *testing.T) {
	t.Parallel()

	tokens := NewComposer("button").Compose(Configuration{Dark: true}, "success", "", "success", "dark")
	assert.Equal(t, []string{"button--dark", "button--success"}, tokens)
}

func TestComposeIsDeterministicWithOneTokenPerCategory(t *testing.T) {
	t.Parallel()

	cfg := Configuration{
		Layout:         LayoutFlex,
		Gap:            "6",
		JustifyContent: JustifyBetween,
		AlignItems:     ItemsCenter,
		Spacing:        spacing.Override{PaddingY: "2", Padding: true, Margin: true},
		Rounded:        SizeLG,
		BorderWidth:    "1",
		BorderColor:    BorderColorLight,
		OverflowY:      OverflowScroll,
		Dark:           true,
	}
	composer := NewComposer("panel")
	first := composer.Compose(cfg)

	for i := 0; i < 50; i++ {
		require.Equal(t, first, composer.Compose(cfg))
	}

	categories := make(map[string]string, len(first))
	for _, token := range first {
		category := categoryOf(t, "panel", token)
		prev, dup := categories[category]
		require.False(t, dup, "category %q emitted twice: %q and %q", category, prev, token)
		categories[category] = token
	}
}

func TestClassesJoinsTokens(t *testing.T) {
	t.Parallel()

	got := NewComposer("box").Classes(Configuration{Layout: LayoutFlex, Gap: "1"}, "open")
	assert.Equal(t, "box--flex box--gap-1 box--open", got)
}

func contains(tokens []string, want string) bool {
	for _, token := range tokens {
		if token == want {
			return true
		}
	}
	return false
}

// categoryOf strips the component prefix and the trailing value, leaving the
// category. Multi-word categories are matched against the known list first.
func categoryOf(t *testing.T, component, token string) string {
	t.Helper()
	rest := strings.TrimPrefix(token, component+Separator)
	for _, category := range []string{
		"border-color", "border-style", "overflow-x", "overflow-y",
		"padding-x", "padding-y", "margin-x", "margin-y", "max-width", "min-h", "max-h",
	} {
		if strings.HasPrefix(rest, category) {
			return category
		}
	}
	if i := strings.Index(rest, "-"); i > 0 {
		return rest[:i]
	}
	return rest
}
