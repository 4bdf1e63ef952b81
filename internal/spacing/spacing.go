// Package spacing resolves conflicts between axis-specific and boolean
// padding/margin options before style tokens are emitted.
package spacing

// Override carries the raw spacing options of a style configuration.
// Axis values are scale names ("2", "4", "lg"); an empty string means absent.
type Override struct {
	PaddingX string `yaml:"padding_x,omitempty" validate:"omitempty,oneof=0 1 2 3 4 5 6 8"`
	PaddingY string `yaml:"padding_y,omitempty" validate:"omitempty,oneof=0 1 2 3 4 5 6 8"`
	MarginX  string `yaml:"margin_x,omitempty" validate:"omitempty,oneof=0 1 2 3 4 5 6 8 auto"`
	MarginY  string `yaml:"margin_y,omitempty" validate:"omitempty,oneof=0 1 2 3 4 5 6 8 auto"`
	Padding  bool   `yaml:"padding,omitempty"`
	Margin   bool   `yaml:"margin,omitempty"`
}

// HasPaddingAxis reports whether either padding axis is set explicitly.
func (o Override) HasPaddingAxis() bool {
	return o.PaddingX != "" || o.PaddingY != ""
}

// HasMarginAxis reports whether either margin axis is set explicitly.
func (o Override) HasMarginAxis() bool {
	return o.MarginX != "" || o.MarginY != ""
}

// IsZero reports whether no spacing option is set.
func (o Override) IsZero() bool {
	return o == Override{}
}

// Resolve returns o with the generic padding/margin defaults suppressed
// wherever an axis value is present. Padding and margin resolve independently.
func Resolve(o Override) Override {
	if o.HasPaddingAxis() {
		o.Padding = false
	}
	if o.HasMarginAxis() {
		o.Margin = false
	}
	return o
}
