package vl

// Orientation values of a mark.
const (
	OrientHorizontal = "horizontal"
	OrientVertical   = "vertical"
)

// MarkConfig holds mark-level defaults. Every property is optional; nil means
// the compiler resolves it by rule.
type MarkConfig struct {
	Filled  *bool    `yaml:"filled,omitempty" json:"filled,omitempty"`
	Opacity *float64 `yaml:"opacity,omitempty" json:"opacity,omitempty"`
	Orient  *string  `yaml:"orient,omitempty" json:"orient,omitempty"`
	Align   *string  `yaml:"align,omitempty" json:"align,omitempty"`

	Color            *string   `yaml:"color,omitempty" json:"color,omitempty"`
	Fill             *string   `yaml:"fill,omitempty" json:"fill,omitempty"`
	Stroke           *string   `yaml:"stroke,omitempty" json:"stroke,omitempty"`
	FillOpacity      *float64  `yaml:"fillOpacity,omitempty" json:"fillOpacity,omitempty"`
	StrokeOpacity    *float64  `yaml:"strokeOpacity,omitempty" json:"strokeOpacity,omitempty"`
	StrokeWidth      *float64  `yaml:"strokeWidth,omitempty" json:"strokeWidth,omitempty"`
	StrokeDash       []float64 `yaml:"strokeDash,omitempty" json:"strokeDash,omitempty"`
	StrokeDashOffset *float64  `yaml:"strokeDashOffset,omitempty" json:"strokeDashOffset,omitempty"`

	Shape *string  `yaml:"shape,omitempty" json:"shape,omitempty"`
	Size  *float64 `yaml:"size,omitempty" json:"size,omitempty"`
}

// IsFilled reports the filled flag, treating an unresolved flag as filled.
func (c *MarkConfig) IsFilled() bool {
	return c.Filled == nil || *c.Filled
}

// Orientation returns the effective orientation; unset means vertical.
func (c *MarkConfig) Orientation() string {
	if c.Orient == nil {
		return OrientVertical
	}

	return *c.Orient
}

// LegendConfig holds defaults applied to every legend request.
type LegendConfig struct {
	Orient          string `yaml:"orient,omitempty"`
	ShortTimeLabels bool   `yaml:"shortTimeLabels,omitempty"`
}

// Config is the partial configuration object of a chart.
type Config struct {
	Mark         MarkConfig   `yaml:"mark,omitempty"`
	Legend       LegendConfig `yaml:"legend,omitempty"`
	NumberFormat string       `yaml:"numberFormat,omitempty"`
	TimeFormat   string       `yaml:"timeFormat,omitempty"`
}

// Default configuration values.
const (
	DefaultMarkColor    = "#4682b4"
	DefaultNumberFormat = "s"
	DefaultTimeFormat   = "%Y-%m-%d"
)

// DefaultConfig returns the configuration used when a chart sets nothing.
func DefaultConfig() Config {
	color := DefaultMarkColor

	return Config{
		Mark:         MarkConfig{Color: &color},
		NumberFormat: DefaultNumberFormat,
		TimeFormat:   DefaultTimeFormat,
	}
}

// Ptr returns a pointer to v. It keeps literal optional values short.
func Ptr[T any](v T) *T {
	return &v
}
