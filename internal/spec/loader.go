package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chartc/internal/vl"
)

// LoadFile loads and parses a chart specification from the given path.
func LoadFile(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart spec %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML or JSON data into a Chart.
func Parse(data []byte) (*Chart, error) {
	var c Chart

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chart spec: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// applyDefaults fills in default configuration values left unset.
func applyDefaults(c *Chart) {
	defaults := vl.DefaultConfig()

	if c.Encoding == nil {
		c.Encoding = vl.Encoding{}
	}

	if c.Config.Mark.Color == nil {
		c.Config.Mark.Color = defaults.Mark.Color
	}

	if c.Config.NumberFormat == "" {
		c.Config.NumberFormat = defaults.NumberFormat
	}

	if c.Config.TimeFormat == "" {
		c.Config.TimeFormat = defaults.TimeFormat
	}
}
