package vl

// LegendProperties carries explicit overrides for the legend property groups.
type LegendProperties struct {
	Title   Props `yaml:"title,omitempty"`
	Symbols Props `yaml:"symbols,omitempty"`
	Legend  Props `yaml:"legend,omitempty"`
	Labels  Props `yaml:"labels,omitempty"`
}

// Group returns the override for the named group, or nil.
func (p LegendProperties) Group(name string) Props {
	switch name {
	case "title":
		return p.Title
	case "symbols":
		return p.Symbols
	case "legend":
		return p.Legend
	case "labels":
		return p.Labels
	default:
		return nil
	}
}

// Legend is a legend request. It decodes from `false` (no legend), `true`
// (default legend) or a mapping of explicit settings.
type Legend struct {
	// Disabled is set when the request was `false`.
	Disabled bool `yaml:"-"`

	Title           string `yaml:"title,omitempty"`
	Format          string `yaml:"format,omitempty"`
	Orient          string `yaml:"orient,omitempty"`
	Values          []any  `yaml:"values,omitempty"`
	ShortTimeLabels *bool  `yaml:"shortTimeLabels,omitempty"`

	SymbolColor       string   `yaml:"symbolColor,omitempty"`
	SymbolShape       string   `yaml:"symbolShape,omitempty"`
	SymbolSize        *float64 `yaml:"symbolSize,omitempty"`
	SymbolStrokeWidth *float64 `yaml:"symbolStrokeWidth,omitempty"`

	Properties LegendProperties `yaml:"properties,omitempty"`
}

// Enabled reports whether l requests a legend. A nil request is enabled:
// bound legend channels get a default legend unless it is turned off.
func (l *Legend) Enabled() bool {
	return l == nil || !l.Disabled
}
