package vl

import "slices"

// Channel identifies a visual encoding role.
type Channel string

const (
	X       Channel = "x"
	Y       Channel = "y"
	X2      Channel = "x2"
	Y2      Channel = "y2"
	Row     Channel = "row"
	Column  Channel = "column"
	Shape   Channel = "shape"
	Size    Channel = "size"
	Color   Channel = "color"
	Text    Channel = "text"
	Label   Channel = "label"
	Detail  Channel = "detail"
	Path    Channel = "path"
	Order   Channel = "order"
	Opacity Channel = "opacity"
)

// Scale roles that are allocated a scale name but cannot be encoded directly.
const (
	// ColorLegend maps rank positions of an ordinal, binned or time-unit
	// color field back to display values.
	ColorLegend Channel = "color_legend"
	// ColorLegendLabel maps bin starts to range labels.
	ColorLegendLabel Channel = "color_legend_label"
)

// Channels lists every encodable channel.
var Channels = []Channel{
	X, Y, X2, Y2, Row, Column, Shape, Size, Color,
	Text, Label, Detail, Path, Order, Opacity,
}

// LegendChannels are the channels that may carry a legend, in compile order.
var LegendChannels = []Channel{Color, Size, Shape}

// Valid reports whether c is an encodable channel.
func (c Channel) Valid() bool {
	return slices.Contains(Channels, c)
}

func (c Channel) String() string {
	return string(c)
}
