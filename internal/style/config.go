package style

import "github.com/alexisbeaulieu97/prism/internal/spacing"

// Layout selects the layout model of a component.
type Layout string

const (
	LayoutBlock  Layout = "block"
	LayoutFlex   Layout = "flex"
	LayoutGrid   Layout = "grid"
	LayoutStack  Layout = "stack"
	LayoutInline Layout = "inline"
)

// Size is the shared t-shirt scale used by max-width, rounded, shadow and
// overlay sizing.
type Size string

const (
	SizeNone Size = "none"
	SizeXS   Size = "xs"
	SizeSM   Size = "sm"
	SizeMD   Size = "md"
	SizeLG   Size = "lg"
	SizeXL   Size = "xl"
	Size2XL  Size = "2xl"
	SizeFull Size = "full"
)

// Align positions a block inside its parent.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// TextAlign aligns inline content.
type TextAlign string

const (
	TextLeft    TextAlign = "left"
	TextCenter  TextAlign = "center"
	TextRight   TextAlign = "right"
	TextJustify TextAlign = "justify"
)

// AlignItems is the flex cross-axis alignment.
type AlignItems string

const (
	ItemsStart    AlignItems = "start"
	ItemsCenter   AlignItems = "center"
	ItemsEnd      AlignItems = "end"
	ItemsStretch  AlignItems = "stretch"
	ItemsBaseline AlignItems = "baseline"
)

// JustifyContent is the flex main-axis distribution.
type JustifyContent string

const (
	JustifyStart   JustifyContent = "start"
	JustifyCenter  JustifyContent = "center"
	JustifyEnd     JustifyContent = "end"
	JustifyBetween JustifyContent = "between"
	JustifyAround  JustifyContent = "around"
	JustifyEvenly  JustifyContent = "evenly"
)

// FlexDirection is the flex main axis.
type FlexDirection string

const (
	DirectionRow           FlexDirection = "row"
	DirectionColumn        FlexDirection = "column"
	DirectionRowReverse    FlexDirection = "row-reverse"
	DirectionColumnReverse FlexDirection = "column-reverse"
)

// FlexWrap controls wrapping of flex children.
type FlexWrap string

const (
	WrapWrap    FlexWrap = "wrap"
	WrapNoWrap  FlexWrap = "nowrap"
	WrapReverse FlexWrap = "wrap-reverse"
)

// Background is a semantic surface colour.
type Background string

const (
	BackgroundTransparent Background = "transparent"
	BackgroundWhite       Background = "white"
	BackgroundLight       Background = "light"
	BackgroundDark        Background = "dark"
	BackgroundPrimary     Background = "primary"
	BackgroundSecondary   Background = "secondary"
	BackgroundSurface     Background = "surface"
)

// BorderColor is a semantic border colour.
type BorderColor string

const (
	BorderColorLight   BorderColor = "light"
	BorderColorMedium  BorderColor = "medium"
	BorderColorDark    BorderColor = "dark"
	BorderColorPrimary BorderColor = "primary"
	BorderColorSuccess BorderColor = "success"
	BorderColorWarning BorderColor = "warning"
	BorderColorDanger  BorderColor = "danger"
)

// BorderStyle is the stroke of a border.
type BorderStyle string

const (
	BorderSolid  BorderStyle = "solid"
	BorderDashed BorderStyle = "dashed"
	BorderDotted BorderStyle = "dotted"
	BorderDouble BorderStyle = "double"
	BorderNone   BorderStyle = "none"
)

// Overflow controls clipping on one axis.
type Overflow string

const (
	OverflowVisible Overflow = "visible"
	OverflowHidden  Overflow = "hidden"
	OverflowScroll  Overflow = "scroll"
	OverflowAuto    Overflow = "auto"
)

// Position is the CSS-like positioning mode.
type Position string

const (
	PositionStatic   Position = "static"
	PositionRelative Position = "relative"
	PositionAbsolute Position = "absolute"
	PositionFixed    Position = "fixed"
	PositionSticky   Position = "sticky"
)

// Transition selects transition timing.
type Transition string

const (
	TransitionNone   Transition = "none"
	TransitionFast   Transition = "fast"
	TransitionNormal Transition = "normal"
	TransitionSlow   Transition = "slow"
)

// Hover selects a hover effect.
type Hover string

const (
	HoverLift   Hover = "lift"
	HoverGrow   Hover = "grow"
	HoverShadow Hover = "shadow"
	HoverDarken Hover = "darken"
)

// Configuration is the flat, independently optional set of visual dimensions
// a component accepts. Empty strings and false booleans emit nothing.
type Configuration struct {
	Layout         Layout         `yaml:"layout,omitempty" validate:"omitempty,oneof=block flex grid stack inline"`
	MaxWidth       Size           `yaml:"max_width,omitempty" validate:"omitempty,oneof=xs sm md lg xl 2xl full none"`
	Width          string         `yaml:"width,omitempty" validate:"omitempty,number|oneof=auto full fit half"`
	Align          Align          `yaml:"align,omitempty" validate:"omitempty,oneof=left center right"`
	Gap            string         `yaml:"gap,omitempty" validate:"omitempty,oneof=0 1 2 3 4 5 6 8 10 12"`
	TextAlign      TextAlign      `yaml:"text_align,omitempty" validate:"omitempty,oneof=left center right justify"`
	AlignItems     AlignItems     `yaml:"align_items,omitempty" validate:"omitempty,oneof=start center end stretch baseline"`
	JustifyContent JustifyContent `yaml:"justify_content,omitempty" validate:"omitempty,oneof=start center end between around evenly"`
	FlexDirection  FlexDirection  `yaml:"flex_direction,omitempty" validate:"omitempty,oneof=row column row-reverse column-reverse"`
	FlexWrap       FlexWrap       `yaml:"flex_wrap,omitempty" validate:"omitempty,oneof=wrap nowrap wrap-reverse"`
	Columns        string         `yaml:"columns,omitempty" validate:"omitempty,oneof=1 2 3 4 5 6 12"`
	Divided        bool           `yaml:"divided,omitempty"`

	Spacing spacing.Override `yaml:",inline"`

	Rounded    Size       `yaml:"rounded,omitempty" validate:"omitempty,oneof=none sm md lg xl full"`
	Shadow     Size       `yaml:"shadow,omitempty" validate:"omitempty,oneof=none sm md lg xl"`
	Background Background `yaml:"background,omitempty" validate:"omitempty,oneof=transparent white light dark primary secondary surface"`

	BorderWidth string      `yaml:"border_width,omitempty" validate:"omitempty,oneof=0 1 2 4"`
	BorderColor BorderColor `yaml:"border_color,omitempty" validate:"omitempty,oneof=light medium dark primary success warning danger"`
	BorderStyle BorderStyle `yaml:"border_style,omitempty" validate:"omitempty,oneof=solid dashed dotted double none"`

	Size      Size   `yaml:"size,omitempty" validate:"omitempty,oneof=sm md lg xl full"`
	MinHeight string `yaml:"min_height,omitempty" validate:"omitempty,number|oneof=full screen"`
	MaxHeight string `yaml:"max_height,omitempty" validate:"omitempty,number|oneof=full screen none"`

	OverflowX Overflow `yaml:"overflow_x,omitempty" validate:"omitempty,oneof=visible hidden scroll auto"`
	OverflowY Overflow `yaml:"overflow_y,omitempty" validate:"omitempty,oneof=visible hidden scroll auto"`

	Position Position `yaml:"position,omitempty" validate:"omitempty,oneof=static relative absolute fixed sticky"`
	ZIndex   string   `yaml:"z_index,omitempty" validate:"omitempty,oneof=auto 0 10 20 30 40 50"`

	Opacity string `yaml:"opacity,omitempty" validate:"omitempty,oneof=0 25 50 75 90 100"`

	Transition Transition `yaml:"transition,omitempty" validate:"omitempty,oneof=none fast normal slow"`
	Hover      Hover      `yaml:"hover,omitempty" validate:"omitempty,oneof=lift grow shadow darken"`

	Dark bool `yaml:"dark,omitempty"`
}
