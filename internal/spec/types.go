package spec

import (
	"chartc/internal/vl"
)

// Chart is a single-view chart specification.
type Chart struct {
	Description string      `yaml:"description,omitempty"`
	Mark        vl.Mark     `yaml:"mark"`
	Encoding    vl.Encoding `yaml:"encoding,omitempty"`
	Config      vl.Config   `yaml:"config,omitempty"`
}
