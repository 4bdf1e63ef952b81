package placement

import (
	"strconv"
	"strings"
)

// Style returns the inline style record for g. Unset fields are omitted.
func (g Geometry) Style() map[string]string {
	out := make(map[string]string, 10)
	put := func(key string, l Length) {
		if l.IsSet() {
			out[key] = l.String()
		}
	}
	put("top", g.Top)
	put("right", g.Right)
	put("bottom", g.Bottom)
	put("left", g.Left)
	if g.Transform != "" {
		out["transform"] = g.Transform
	}
	if g.ZIndex != nil {
		out["zIndex"] = strconv.Itoa(*g.ZIndex)
	}
	put("marginTop", g.Margin.Top)
	put("marginRight", g.Margin.Right)
	put("marginBottom", g.Margin.Bottom)
	put("marginLeft", g.Margin.Left)
	return out
}

// IsZero reports whether g carries no positioning or margin at all.
func (g Geometry) IsZero() bool {
	return len(g.Style()) == 0
}

// Origin places a box of boxW×boxH cells on a canvas of canvasW×canvasH
// cells and returns its top-left corner. Offsets resolve through
// Length.Cells and translate transforms shift by half the box size. Margins
// push the box away from the edge it is anchored to. The result is clamped
// to the canvas.
func (g Geometry) Origin(canvasW, canvasH, boxW, boxH int) (x, y int) {
	x = axisOrigin(g.Left, g.Right, canvasW, boxW)
	y = axisOrigin(g.Top, g.Bottom, canvasH, boxH)

	if shiftsX(g.Transform) {
		x -= boxW / 2
	}
	if shiftsY(g.Transform) {
		y -= boxH / 2
	}

	x += marginShift(g.Left, g.Right, g.Margin.Left, g.Margin.Right, canvasW)
	y += marginShift(g.Top, g.Bottom, g.Margin.Top, g.Margin.Bottom, canvasH)

	return clamp(x, 0, canvasW-boxW), clamp(y, 0, canvasH-boxH)
}

func axisOrigin(start, end Length, canvas, box int) int {
	if n, ok := start.Cells(canvas); ok {
		return n
	}
	if n, ok := end.Cells(canvas); ok {
		return canvas - n - box
	}
	return 0
}

// marginShift pushes an end-anchored box away from the end edge and any
// other box away from the start edge.
func marginShift(start, end, marginStart, marginEnd Length, canvas int) int {
	if !start.IsSet() && end.IsSet() {
		if n, ok := marginEnd.Cells(canvas); ok {
			return -n
		}
		return 0
	}
	if n, ok := marginStart.Cells(canvas); ok {
		return n
	}
	return 0
}

func shiftsX(transform string) bool {
	return strings.Contains(transform, translateX) || strings.Contains(transform, translateXY)
}

func shiftsY(transform string) bool {
	return strings.Contains(transform, translateY) || strings.Contains(transform, translateXY)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
