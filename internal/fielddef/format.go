package fielddef

import (
	"chartc/internal/vl"
)

// FormatTypeTime marks a format string as a time format.
const FormatTypeTime = "time"

// Context is the read-only view of a chart model the formatters need.
type Context interface {
	FieldDef(ch vl.Channel) *vl.FieldDef
	Legend(ch vl.Channel) *vl.Legend
	Config() *vl.Config
}

// Format holds the format-related properties of an axis or legend.
type Format struct {
	FormatType string `json:"formatType,omitempty"`
	Format     string `json:"format,omitempty"`
}

// FormatMixins returns the format properties for the field bound to ch.
// Only quantitative and temporal fields are formatted. explicit, when not
// empty, replaces the derived format string.
func FormatMixins(ctx Context, ch vl.Channel, explicit string) Format {
	fd := ctx.FieldDef(ch)
	if fd == nil {
		return Format{}
	}

	var f Format

	switch fd.Type {
	case vl.Quantitative:
		f.Format = ctx.Config().NumberFormat
	case vl.Temporal:
		f.FormatType = FormatTypeTime
		f.Format = TimeFormat(ctx, ch)
	default:
		return Format{}
	}

	if explicit != "" {
		f.Format = explicit
	}

	return f
}
