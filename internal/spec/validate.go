package spec

import (
	"fmt"
	"slices"

	"chartc/internal/diagnostic"
	"chartc/internal/fielddef"
	"chartc/internal/vl"
)

// Validate checks a chart structurally. Compilation assumes a chart without
// validation errors: marks, channels and field types are all known.
func Validate(c *Chart) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if c == nil {
		res.AddError("chart_is_nil", "chart is nil", "", "")
		return res
	}

	if c.Mark == "" {
		res.AddError("missing_mark", "mark is required", "", "mark")
	} else if !c.Mark.Valid() {
		res.AddError("unknown_mark", fmt.Sprintf("unknown mark %q", c.Mark), "", "mark")
	}

	// sorted so diagnostics come out in a stable order
	channels := make([]vl.Channel, 0, len(c.Encoding))
	for ch := range c.Encoding {
		channels = append(channels, ch)
	}

	slices.Sort(channels)

	for _, ch := range channels {
		validateFieldDef(res, ch, c.Encoding[ch])
	}

	return res
}

func validateFieldDef(res *diagnostic.Diagnostics, ch vl.Channel, fd *vl.FieldDef) {
	path := "encoding." + string(ch)

	if !ch.Valid() {
		res.AddError("unknown_channel", fmt.Sprintf("unknown channel %q", ch), string(ch), path)
		return
	}

	if fd == nil {
		res.AddWarning("empty_binding", "channel has no binding", string(ch), path)
		return
	}

	if fd.Field != "" && fd.Value != nil {
		res.AddError("field_and_value",
			"a binding refers to a field or holds a constant value, not both", string(ch), path)
	}

	if fd.Aggregated() && fd.Field == "" && !fd.IsCount() {
		res.AddError("aggregate_without_field",
			fmt.Sprintf("aggregate %q needs a field", fd.Aggregate), string(ch), path+".aggregate")
	}

	if (fd.Field != "" || fd.IsCount()) && fd.Type == "" {
		res.AddError("missing_type", "field type is required", string(ch), path+".type")
	}

	if fd.HasTimeUnit() && !fielddef.KnownTimeUnit(fd.TimeUnit) {
		res.AddWarning("unknown_time_unit",
			fmt.Sprintf("unknown time unit %q, using the configured time format", fd.TimeUnit),
			string(ch), path+".timeUnit")
	}

	if fd.Legend != nil && !slices.Contains(vl.LegendChannels, ch) {
		res.AddWarning("legend_ignored",
			fmt.Sprintf("channel %q cannot carry a legend", ch), string(ch), path+".legend")
	}

	if fd.IsConstant() && fd.Legend != nil && fd.Legend.Enabled() {
		res.AddInfo("constant_has_no_legend",
			"a constant binding has no legend", string(ch), path+".legend")
	}
}
