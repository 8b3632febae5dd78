package legend

import (
	"slices"

	"chartc/internal/fielddef"
	"chartc/internal/vl"
)

// Model is the read-only view of a unit model the legend compiler queries.
type Model interface {
	fielddef.Context
	Mark() vl.Mark
	Has(ch vl.Channel) bool
	ScaleName(ch vl.Channel) (string, bool)
}

// CompileAll compiles the legends of every legend channel that has a legend
// request. A channel without a request has no entry in the result.
func CompileAll(m Model) (map[vl.Channel]*Definition, error) {
	defs := make(map[vl.Channel]*Definition)

	for _, ch := range vl.LegendChannels {
		if m.Legend(ch) == nil {
			continue
		}

		def, err := Compile(m, ch)
		if err != nil {
			return nil, err
		}

		defs[ch] = def
	}

	return defs, nil
}

// Compile compiles the legend of ch.
func Compile(m Model, ch vl.Channel) (*Definition, error) {
	req := m.Legend(ch)
	if req == nil {
		req = &vl.Legend{}
	}

	fd := m.FieldDef(ch)
	if fd == nil {
		return nil, &Error{Channel: ch, Err: ErrUnboundChannel}
	}

	def := &Definition{}

	if err := bindScale(m, ch, def); err != nil {
		return nil, err
	}

	def.Title = title(req, fd)

	if !fd.Binned() {
		f := fielddef.FormatMixins(m, ch, req.Format)
		def.FormatType = f.FormatType
		def.Format = f.Format
	}

	def.Orient = req.Orient
	def.Values = slices.Clone(req.Values)

	for _, g := range Groups {
		override := req.Properties.Group(g.String())

		value := override
		if rule, ok := groupRules[g]; ok {
			generated, err := rule(fd, override, m, ch)
			if err != nil {
				return nil, err
			}

			value = generated
		}

		if len(value) == 0 {
			continue
		}

		if def.Properties == nil {
			def.Properties = make(map[string]vl.Props)
		}

		def.Properties[g.String()] = value.Clone()
	}

	return def, nil
}

// bindScale points the legend at the scale of ch. Unfilled marks show color
// through their stroke, so the color legend follows the filled flag.
func bindScale(m Model, ch vl.Channel, def *Definition) error {
	switch ch {
	case vl.Color:
		role := vl.Color
		if m.FieldDef(ch).NeedsLegendScale() {
			role = vl.ColorLegend
		}

		name, err := scaleName(m, ch, role)
		if err != nil {
			return err
		}

		if m.Config().Mark.IsFilled() {
			def.Fill = name
		} else {
			def.Stroke = name
		}

	case vl.Size:
		name, err := scaleName(m, ch, ch)
		if err != nil {
			return err
		}

		def.Size = name

	case vl.Shape:
		name, err := scaleName(m, ch, ch)
		if err != nil {
			return err
		}

		def.Shape = name

	default:
		return &Error{Channel: ch, Err: ErrNotLegendChannel}
	}

	return nil
}

func title(req *vl.Legend, fd *vl.FieldDef) string {
	if req.Title != "" {
		return req.Title
	}

	return fielddef.Title(fd)
}
