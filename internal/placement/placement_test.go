package placement

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

var lengthComparer = cmp.Comparer(func(a, b Length) bool { return a.String() == b.String() })

func intPtr(n int) *int { return &n }

func TestCalculatePresets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		placement Placement
		want      Geometry
	}{
		{TopLeft, Geometry{Top: Raw("0"), Left: Raw("0")}},
		{TopCenter, Geometry{Top: Raw("0"), Left: Raw("50%"), Transform: "translateX(-50%)"}},
		{TopRight, Geometry{Top: Raw("0"), Right: Raw("0")}},
		{CenterLeft, Geometry{Top: Raw("50%"), Left: Raw("0"), Transform: "translateY(-50%)"}},
		{Center, Geometry{Top: Raw("50%"), Left: Raw("50%"), Transform: "translate(-50%,-50%)"}},
		{CenterRight, Geometry{Top: Raw("50%"), Right: Raw("0"), Transform: "translateY(-50%)"}},
		{BottomLeft, Geometry{Bottom: Raw("0"), Left: Raw("0")}},
		{BottomCenter, Geometry{Bottom: Raw("0"), Left: Raw("50%"), Transform: "translateX(-50%)"}},
		{BottomRight, Geometry{Bottom: Raw("0"), Right: Raw("0")}},
	}

	for _, tt := range tests {
		t.Run(string(tt.placement), func(t *testing.T) {
			t.Parallel()
			for _, mode := range []Mode{ModeAbsolute, ModeFixed} {
				got := Calculate(Spec{Mode: mode, Placement: tt.placement})
				if diff := cmp.Diff(tt.want, got, lengthComparer); diff != "" {
					t.Errorf("Calculate(%s, %s) mismatch (-want +got):\n%s", mode, tt.placement, diff)
				}
			}
		})
	}
}

func TestCalculateCenterStyleRecord(t *testing.T) {
	t.Parallel()

	got := Calculate(Spec{Mode: ModeAbsolute, Placement: Center}).Style()
	assert.Equal(t, map[string]string{
		"top":       "50%",
		"left":      "50%",
		"transform": "translate(-50%,-50%)",
	}, got)
}

func TestCalculateExplicitOffsetReplacesOnlyThatSide(t *testing.T) {
	t.Parallel()

	got := Calculate(Spec{Mode: ModeAbsolute, Placement: Center, Top: Px(10)})

	assert.Equal(t, "10px", got.Top.String())
	assert.Equal(t, "50%", got.Left.String())
	assert.Equal(t, "translate(-50%,-50%)", got.Transform)
	assert.False(t, got.Right.IsSet())
	assert.False(t, got.Bottom.IsSet())
}

func TestCalculateStaticEmitsNoPositioning(t *testing.T) {
	t.Parallel()

	got := Calculate(Spec{Mode: ModeStatic, Placement: Center, Top: Px(4), ZIndex: intPtr(10), MarginTop: Px(2)})

	assert.False(t, got.Top.IsSet())
	assert.False(t, got.Left.IsSet())
	assert.Empty(t, got.Transform)
	require.NotNil(t, got.ZIndex)
	assert.Equal(t, 10, *got.ZIndex)
	assert.Equal(t, "2px", got.Margin.Top.String())
}

func TestCalculateRelativeIgnoresPreset(t *testing.T) {
	t.Parallel()

	got := Calculate(Spec{Mode: ModeRelative, Placement: BottomRight, Left: Raw("2rem")})
	want := Geometry{Left: Raw("2rem")}
	if diff := cmp.Diff(want, got, lengthComparer); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculateCustomUsesExplicitOffsetsVerbatim(t *testing.T) {
	t.Parallel()

	got := Calculate(Spec{
		Mode:      ModeFixed,
		Placement: Custom,
		Top:       Px(12),
		Right:     Raw("calc(100% - 4px)"),
		Bottom:    Px(1.5),
	})
	want := Geometry{Top: Raw("12px"), Right: Raw("calc(100% - 4px)"), Bottom: Raw("1.5px")}
	if diff := cmp.Diff(want, got, lengthComparer); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	unknown := Calculate(Spec{Mode: ModeFixed, Placement: "middle", Left: Px(3)})
	if diff := cmp.Diff(Geometry{Left: Raw("3px")}, unknown, lengthComparer); diff != "" {
		t.Errorf("unknown placement should behave like custom (-want +got):\n%s", diff)
	}
}

func TestCalculateMarginPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec Spec
		want Margins
	}{
		{
			name: "horizontal axis leaves per-side top",
			spec: Spec{MarginTop: Px(8), MarginX: Px(20)},
			want: Margins{Top: Raw("8px"), Right: Raw("20px"), Left: Raw("20px")},
		},
		{
			name: "vertical axis overwrites top",
			spec: Spec{MarginTop: Px(8), MarginX: Px(20), MarginY: Px(20)},
			want: Margins{Top: Raw("20px"), Right: Raw("20px"), Bottom: Raw("20px"), Left: Raw("20px")},
		},
		{
			name: "uniform wins over everything",
			spec: Spec{MarginTop: Px(8), MarginX: Px(20), MarginY: Raw("1rem"), Margin: Raw("auto")},
			want: Margins{Top: Raw("auto"), Right: Raw("auto"), Bottom: Raw("auto"), Left: Raw("auto")},
		},
		{
			name: "per-side only",
			spec: Spec{MarginLeft: Px(3), MarginBottom: Raw("2em")},
			want: Margins{Bottom: Raw("2em"), Left: Raw("3px")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Calculate(tt.spec).Margin
			if diff := cmp.Diff(tt.want, got, lengthComparer); diff != "" {
				t.Errorf("margins mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateCopiesZIndex(t *testing.T) {
	t.Parallel()

	z := 40
	spec := Spec{Mode: ModeFixed, Placement: TopRight, ZIndex: &z}
	got := Calculate(spec)
	z = 1

	require.NotNil(t, got.ZIndex)
	assert.Equal(t, 40, *got.ZIndex)
	assert.Equal(t, "40", got.Style()["zIndex"])
}

func TestParsePlacement(t *testing.T) {
	t.Parallel()

	p, err := ParsePlacement("bottom-center")
	require.NoError(t, err)
	assert.Equal(t, BottomCenter, p)

	p, err = ParsePlacement("custom")
	require.NoError(t, err)
	assert.Equal(t, Custom, p)

	_, err = ParsePlacement("middle")
	var invalid *prismerrors.InvalidConfigurationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "placement", invalid.Field)
	assert.Equal(t, "middle", invalid.Value)
}

func TestSpecValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Spec{Mode: ModeAbsolute, Placement: Center, Top: Raw("2rem"), Margin: Raw("auto")}.Validate())

	var invalid *prismerrors.InvalidConfigurationError

	err := Spec{Mode: "floating"}.Validate()
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "position", invalid.Field)

	err = Spec{Mode: ModeFixed, Left: Raw("wide")}.Validate()
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, prismerrors.KindMalformedLength, invalid.Kind)
	assert.Equal(t, "left", invalid.Field)
}

func TestAnchor(t *testing.T) {
	t.Parallel()

	h, v, ok := BottomRight.Anchor()
	require.True(t, ok)
	assert.Equal(t, lipgloss.Right, h)
	assert.Equal(t, lipgloss.Bottom, v)

	_, _, ok = Custom.Anchor()
	assert.False(t, ok)
}

func TestSpecAnchor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		spec   Spec
		h, v   lipgloss.Position
		wantOK bool
	}{
		{"fixed preset", Spec{Mode: ModeFixed, Placement: TopCenter}, lipgloss.Center, lipgloss.Top, true},
		{"absolute preset with margin", Spec{Mode: ModeAbsolute, Placement: BottomRight, MarginRight: Px(2)}, lipgloss.Right, lipgloss.Bottom, true},
		{"static mode", Spec{Mode: ModeStatic, Placement: Center}, lipgloss.Left, lipgloss.Top, false},
		{"explicit offset", Spec{Mode: ModeFixed, Placement: Center, Top: Px(3)}, lipgloss.Left, lipgloss.Top, false},
		{"custom", Spec{Mode: ModeFixed, Placement: Custom, Left: Px(1)}, lipgloss.Left, lipgloss.Top, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, v, ok := tt.spec.Anchor()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.h, h)
			assert.Equal(t, tt.v, v)
		})
	}
}
