package placement

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var cssLengthPattern = regexp.MustCompile(`^(-?\d+(\.\d+)?(px|%|em|rem|vh|vw|ch)?|auto|calc\(.+\))$`)

// Length is an offset or margin value. Numbers are pixel lengths; strings
// pass through verbatim. The zero Length is unset.
type Length struct {
	raw string
}

// Px returns a pixel length.
func Px(n float64) Length {
	return Length{raw: strconv.FormatFloat(n, 'f', -1, 64) + "px"}
}

// Raw returns a length that is emitted exactly as given.
func Raw(s string) Length {
	return Length{raw: s}
}

// Percent returns a percentage length.
func Percent(n float64) Length {
	return Length{raw: strconv.FormatFloat(n, 'f', -1, 64) + "%"}
}

// IsSet reports whether the length was supplied.
func (l Length) IsSet() bool {
	return l.raw != ""
}

func (l Length) String() string {
	return l.raw
}

// Valid reports whether an explicit string length looks like a CSS length.
func (l Length) Valid() bool {
	return !l.IsSet() || cssLengthPattern.MatchString(strings.TrimSpace(l.raw))
}

// Cells resolves the length to terminal cells, treating one pixel as one
// cell and percentages as a share of total. Lengths that cannot be resolved
// (em, calc, auto) report false.
func (l Length) Cells(total int) (int, bool) {
	s := strings.TrimSpace(l.raw)
	switch {
	case s == "":
		return 0, false
	case strings.HasSuffix(s, "%"):
		pct, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, false
		}
		return int(math.Round(float64(total) * pct / 100)), true
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(math.Round(n)), true
}

// UnmarshalYAML accepts numbers (pixels) and strings (verbatim).
func (l *Length) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!!int", "!!float":
		var n float64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*l = Px(n)
	case "!!null":
		*l = Length{}
	default:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*l = Raw(s)
	}
	return nil
}

// MarshalYAML writes the resolved string form.
func (l Length) MarshalYAML() (interface{}, error) {
	return l.raw, nil
}

// IsZero lets yaml omitempty skip unset lengths.
func (l Length) IsZero() bool {
	return !l.IsSet()
}
