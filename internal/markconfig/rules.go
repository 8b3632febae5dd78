package markconfig

import (
	"chartc/internal/vl"
)

// DefaultOpacity is applied to marker marks to reduce overplotting.
const DefaultOpacity = 0.7

// Orientation is the outcome of the orient rule.
type Orientation int

const (
	// OrientNone means the encoding is ambiguous and the rule has no opinion.
	OrientNone Orientation = iota
	// OrientHorizontal sets the orient property to "horizontal".
	OrientHorizontal
	// OrientVertical clears the orient property; vertical is implicit.
	OrientVertical
)

// String returns a human-readable orientation outcome.
func (o Orientation) String() string {
	switch o {
	case OrientNone:
		return "none"
	case OrientHorizontal:
		return vl.OrientHorizontal
	case OrientVertical:
		return vl.OrientVertical
	default:
		return "unknown"
	}
}

// Filled derives the filled flag. It returns nil when current is set.
func Filled(mark vl.Mark, _ vl.Encoding, current *bool) *bool {
	if current != nil {
		return nil
	}

	switch mark {
	case vl.MarkPoint, vl.MarkLine, vl.MarkRule:
		return vl.Ptr(false)
	default:
		return vl.Ptr(true)
	}
}

// Opacity derives the default opacity of marker marks. Aggregation already
// reduces overplotting, unless a detail binding splits groups again.
func Opacity(mark vl.Mark, enc vl.Encoding, current *float64) *float64 {
	if current != nil || !mark.IsPointLike() {
		return nil
	}

	if enc.Aggregated() && !enc.Has(vl.Detail) {
		return nil
	}

	return vl.Ptr(DefaultOpacity)
}

// Orient decides the orientation when exactly one axis holds a measure.
func Orient(_ vl.Mark, enc vl.Encoding) Orientation {
	xIsMeasure := enc.IsMeasure(vl.X) || enc.IsMeasure(vl.X2)
	yIsMeasure := enc.IsMeasure(vl.Y) || enc.IsMeasure(vl.Y2)

	switch {
	case xIsMeasure && !yIsMeasure:
		return OrientHorizontal
	case !xIsMeasure && yIsMeasure:
		return OrientVertical
	default:
		return OrientNone
	}
}

// Align derives the text alignment of text marks.
func Align(mark vl.Mark, enc vl.Encoding, current *string) *string {
	if current != nil || mark != vl.MarkText {
		return nil
	}

	if enc.Has(vl.X) {
		return vl.Ptr("center")
	}

	return vl.Ptr("right")
}

// Rule applies one property decision to the configuration being resolved.
type Rule struct {
	Property string
	Apply    func(mark vl.Mark, enc vl.Encoding, cfg *vl.MarkConfig)
}

// Rules is the ordered rule table run by Resolve.
var Rules = []Rule{
	{
		Property: "filled",
		Apply: func(mark vl.Mark, enc vl.Encoding, cfg *vl.MarkConfig) {
			if v := Filled(mark, enc, cfg.Filled); v != nil {
				cfg.Filled = v
			}
		},
	},
	{
		Property: "opacity",
		Apply: func(mark vl.Mark, enc vl.Encoding, cfg *vl.MarkConfig) {
			if v := Opacity(mark, enc, cfg.Opacity); v != nil {
				cfg.Opacity = v
			}
		},
	},
	{
		Property: "orient",
		Apply: func(mark vl.Mark, enc vl.Encoding, cfg *vl.MarkConfig) {
			switch Orient(mark, enc) {
			case OrientHorizontal:
				cfg.Orient = vl.Ptr(vl.OrientHorizontal)
			case OrientVertical:
				cfg.Orient = nil
			case OrientNone:
			}
		},
	},
	{
		Property: "align",
		Apply: func(mark vl.Mark, enc vl.Encoding, cfg *vl.MarkConfig) {
			if v := Align(mark, enc, cfg.Align); v != nil {
				cfg.Align = v
			}
		},
	},
}
