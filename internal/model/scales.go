package model

import (
	"chartc/internal/vl"
)

// ScaleNames maps channels and scale roles to allocated scale names.
type ScaleNames map[vl.Channel]string

// scaleOwner maps channels that share another channel's scale.
var scaleOwner = map[vl.Channel]vl.Channel{
	vl.X2: vl.X,
	vl.Y2: vl.Y,
}

// channels that never get a scale of their own
var unscaled = map[vl.Channel]bool{
	vl.Detail: true,
	vl.Path:   true,
	vl.Order:  true,
	vl.Text:   true,
	vl.Label:  true,
}

// DefaultScaleNames allocates one scale per channel bound to a field, named
// after the channel, with prefix prepended. A color field that needs the
// color-legend scale also gets the color-legend roles.
func DefaultScaleNames(enc vl.Encoding, prefix string) ScaleNames {
	names := ScaleNames{}

	for _, ch := range vl.Channels {
		fd := enc.FieldDef(ch)
		if !fd.IsBound() || fd.IsConstant() || unscaled[ch] {
			continue
		}

		owner := ch
		if o, ok := scaleOwner[ch]; ok {
			owner = o
		}

		names[ch] = prefix + string(owner)
	}

	if color := enc.FieldDef(vl.Color); color.IsBound() && !color.IsConstant() {
		if color.NeedsLegendScale() {
			names[vl.ColorLegend] = prefix + string(vl.ColorLegend)
		}

		if color.Binned() {
			names[vl.ColorLegendLabel] = prefix + string(vl.ColorLegendLabel)
		}
	}

	return names
}
