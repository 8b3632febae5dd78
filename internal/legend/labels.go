package legend

import (
	"fmt"

	"chartc/internal/fielddef"
	"chartc/internal/vl"
)

// timeLabelTemplate renders a legend datum through a time format.
const timeLabelTemplate = "{{ datum.%s | time:'%s'}}"

// labels rewrites color legend label text so ordinal, binned and time-unit
// fields show their display values instead of the legend scale's domain.
func labels(fd *vl.FieldDef, override vl.Props, m Model, ch vl.Channel) (vl.Props, error) {
	if ch != vl.Color {
		return override, nil
	}

	var text vl.ValueRef

	switch {
	case fd.Type == vl.Ordinal:
		name, err := scaleName(m, ch, vl.ColorLegend)
		if err != nil {
			return nil, err
		}

		text = vl.ScaleData(name)

	case fd.Binned():
		name, err := scaleName(m, ch, vl.ColorLegendLabel)
		if err != nil {
			return nil, err
		}

		text = vl.ScaleData(name)

	case fd.HasTimeUnit():
		text = vl.ValueRef{
			Template: fmt.Sprintf(timeLabelTemplate, vl.DataField, fielddef.TimeFormat(m, ch)),
		}

	default:
		return override, nil
	}

	return vl.Props{"text": text}.Merge(override), nil
}
