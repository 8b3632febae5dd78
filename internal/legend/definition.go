package legend

import (
	"chartc/internal/vl"
)

// Definition is a compiled legend. Exactly one of Fill, Stroke, Size and
// Shape names the scale the legend explains.
type Definition struct {
	Fill   string `json:"fill,omitempty"`
	Stroke string `json:"stroke,omitempty"`
	Size   string `json:"size,omitempty"`
	Shape  string `json:"shape,omitempty"`

	Title      string `json:"title,omitempty"`
	FormatType string `json:"formatType,omitempty"`
	Format     string `json:"format,omitempty"`
	Orient     string `json:"orient,omitempty"`
	Values     []any  `json:"values,omitempty"`

	// Properties holds the non-empty property groups keyed by group name.
	Properties map[string]vl.Props `json:"properties,omitempty"`
}

// Group returns the properties of g, or nil when the group was omitted.
func (d *Definition) Group(g Group) vl.Props {
	return d.Properties[g.String()]
}
