package vl

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for Legend.
// Accepts:
//   - Boolean: `legend: false` turns the legend off, `true` keeps defaults
//   - Mapping: explicit legend settings
func (l *Legend) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var enabled bool

		err := node.Decode(&enabled)
		if err != nil {
			return fmt.Errorf("legend: %w", err)
		}

		*l = Legend{Disabled: !enabled}

		return nil

	case yaml.MappingNode:
		// alias drops the method set so Decode does not recurse
		type plain Legend

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*l = Legend(p)

		return nil

	default:
		return fmt.Errorf("legend: expected bool or mapping, got %v", node.Tag)
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for Bin.
// Accepts a boolean or a mapping of bin parameters, which enables binning.
func (b *Bin) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var enabled bool

		err := node.Decode(&enabled)
		if err != nil {
			return fmt.Errorf("bin: %w", err)
		}

		*b = Bin{Enabled: enabled}

		return nil

	case yaml.MappingNode:
		type plain Bin

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*b = Bin(p)
		b.Enabled = true

		return nil

	default:
		return fmt.Errorf("bin: expected bool or mapping, got %v", node.Tag)
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for Type.
// Short forms (Q, O, T, N) are expanded.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	var s string

	err := node.Decode(&s)
	if err != nil {
		return err
	}

	parsed, ok := ParseType(s)
	if !ok {
		return fmt.Errorf("unknown field type %q", s)
	}

	*t = parsed

	return nil
}
