package model

import (
	"maps"
	"slices"

	"chartc/internal/vl"
)

// Model is an immutable unit chart: one mark with its encoding.
type Model struct {
	mark    vl.Mark
	enc     vl.Encoding
	config  vl.Config
	scales  ScaleNames
	legends map[vl.Channel]*vl.Legend
}

// New builds a model. config is expected to hold the resolved mark config.
// The maps passed in are copied.
func New(mark vl.Mark, enc vl.Encoding, config vl.Config, scales ScaleNames) *Model {
	m := &Model{
		mark:    mark,
		enc:     maps.Clone(enc),
		config:  config,
		scales:  maps.Clone(scales),
		legends: make(map[vl.Channel]*vl.Legend),
	}

	for _, ch := range vl.LegendChannels {
		if l := m.initLegend(ch); l != nil {
			m.legends[ch] = l
		}
	}

	return m
}

// initLegend merges the legend request of ch over the legend config.
// Channels holding a constant value have nothing to explain.
func (m *Model) initLegend(ch vl.Channel) *vl.Legend {
	fd := m.enc.FieldDef(ch)
	if !fd.IsBound() || fd.IsConstant() || !fd.Legend.Enabled() {
		return nil
	}

	var l vl.Legend
	if fd.Legend != nil {
		l = *fd.Legend
		l.Values = slices.Clone(fd.Legend.Values)
	}

	if l.Orient == "" {
		l.Orient = m.config.Legend.Orient
	}

	return &l
}

// Mark returns the mark type.
func (m *Model) Mark() vl.Mark {
	return m.mark
}

// Encoding returns the channel bindings.
func (m *Model) Encoding() vl.Encoding {
	return m.enc
}

// Has reports whether ch is bound.
func (m *Model) Has(ch vl.Channel) bool {
	return m.enc.Has(ch)
}

// FieldDef returns the binding of ch, or nil.
func (m *Model) FieldDef(ch vl.Channel) *vl.FieldDef {
	return m.enc.FieldDef(ch)
}

// Legend returns the effective legend request of ch, or nil when ch has no
// legend.
func (m *Model) Legend(ch vl.Channel) *vl.Legend {
	return m.legends[ch]
}

// ScaleName returns the scale allocated to ch.
func (m *Model) ScaleName(ch vl.Channel) (string, bool) {
	name, ok := m.scales[ch]
	return name, ok && name != ""
}

// Config returns the resolved configuration.
func (m *Model) Config() *vl.Config {
	return &m.config
}
