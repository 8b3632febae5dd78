package vl

import "maps"

// DataField is the field a legend datum exposes to its scale lookups.
const DataField = "data"

// ValueRef is a rendering-grammar value reference: a constant, a scale
// lookup of a field, or a text template.
type ValueRef struct {
	Value    any    `yaml:"value,omitempty" json:"value,omitempty"`
	Scale    string `yaml:"scale,omitempty" json:"scale,omitempty"`
	Field    string `yaml:"field,omitempty" json:"field,omitempty"`
	Template string `yaml:"template,omitempty" json:"template,omitempty"`
}

// Const returns a constant value reference.
func Const(v any) ValueRef {
	return ValueRef{Value: v}
}

// ScaleData returns a reference looking up the legend datum in scale.
func ScaleData(scale string) ValueRef {
	return ValueRef{Scale: scale, Field: DataField}
}

// Props is a property group of a legend: property name to value reference.
type Props map[string]ValueRef

// Merge returns a new group holding p overlaid with over. Keys of over win.
func (p Props) Merge(over Props) Props {
	out := make(Props, len(p)+len(over))
	maps.Copy(out, p)
	maps.Copy(out, over)

	return out
}

// Clone returns a shallow copy of p, or nil when p is nil.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}

	return maps.Clone(p)
}
