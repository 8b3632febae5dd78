package legend

import (
	"chartc/internal/common"
	"chartc/internal/vl"
)

// fillStrokeConfig lists the fill and stroke related mark config properties.
var fillStrokeConfig = []string{
	"fill", "fillOpacity",
	"stroke", "strokeWidth", "strokeDash", "strokeDashOffset", "strokeOpacity",
	"opacity",
}

// symbolConfig is what a legend symbol inherits from the mark config.
// Dashes make swatches unreadable.
var symbolConfig = common.Without(fillStrokeConfig, "strokeDash", "strokeDashOffset")

// symbolShape returns the default swatch shape for mark. Point, line and
// area marks keep the renderer's default circle.
func symbolShape(mark vl.Mark) (string, bool) {
	switch mark {
	case vl.MarkBar, vl.MarkTick, vl.MarkText:
		return "square", true
	case vl.MarkCircle, vl.MarkSquare:
		return string(mark), true
	default:
		return "", false
	}
}

func symbols(fd *vl.FieldDef, override vl.Props, m Model, ch vl.Channel) (vl.Props, error) {
	out := vl.Props{}

	if shape, ok := symbolShape(m.Mark()); ok {
		out["shape"] = vl.Const(shape)
	}

	cfg := &m.Config().Mark
	filled := cfg.IsFilled()

	paint := "stroke"
	if filled {
		paint = "fill"
	}

	// the color legend must not let the mark color config hide its own scale
	inherit := symbolConfig
	if ch == vl.Color {
		inherit = common.Without(symbolConfig, paint)
	}

	for _, prop := range inherit {
		if v, ok := markProperty(cfg, prop); ok {
			out[prop] = vl.Const(v)
		}
	}

	if filled {
		out["strokeWidth"] = vl.Const(0)
	}

	var (
		value    vl.ValueRef
		hasValue bool
	)

	if ch == vl.Color && m.Has(vl.Color) {
		if fd.NeedsLegendScale() {
			name, err := scaleName(m, ch, vl.ColorLegend)
			if err != nil {
				return nil, err
			}

			value, hasValue = vl.ScaleData(name), true
		}
	} else if color := m.FieldDef(vl.Color); color.IsConstant() {
		value, hasValue = vl.Const(color.Value), true
	}

	if hasValue {
		out[paint] = value
	} else if _, set := out[paint]; !set && ch != vl.Color && cfg.Color != nil {
		out[paint] = vl.Const(*cfg.Color)
	}

	if req := m.Legend(ch); req != nil {
		applySymbolShortcuts(out, req)
	}

	out = out.Merge(override)
	if len(out) == 0 {
		return nil, nil
	}

	return out, nil
}

func applySymbolShortcuts(out vl.Props, req *vl.Legend) {
	if req.SymbolColor != "" {
		out["fill"] = vl.Const(req.SymbolColor)
	}

	if req.SymbolShape != "" {
		out["shape"] = vl.Const(req.SymbolShape)
	}

	if req.SymbolSize != nil {
		out["size"] = vl.Const(*req.SymbolSize)
	}

	if req.SymbolStrokeWidth != nil {
		out["strokeWidth"] = vl.Const(*req.SymbolStrokeWidth)
	}
}

// markProperty returns the configured value of a fill/stroke property.
func markProperty(cfg *vl.MarkConfig, name string) (any, bool) {
	var (
		s *string
		f *float64
	)

	switch name {
	case "fill":
		s = cfg.Fill
	case "stroke":
		s = cfg.Stroke
	case "fillOpacity":
		f = cfg.FillOpacity
	case "strokeOpacity":
		f = cfg.StrokeOpacity
	case "strokeWidth":
		f = cfg.StrokeWidth
	case "strokeDashOffset":
		f = cfg.StrokeDashOffset
	case "opacity":
		f = cfg.Opacity
	case "strokeDash":
		if len(cfg.StrokeDash) > 0 {
			return cfg.StrokeDash, true
		}
	}

	switch {
	case s != nil:
		return *s, true
	case f != nil:
		return *f, true
	default:
		return nil, false
	}
}
