package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsSeverityBuckets(t *testing.T) {
	var d Diagnostics

	d.AddInfo("orient_ambiguous", "both axes are measures", "", "config.mark.orient")
	d.AddWarning("legend_ignored", "legend on x is ignored", "x", "encoding.x.legend")
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddError("unknown_mark", `unknown mark "pie"`, "", "mark")
	require.True(t, d.HasErrors())
	assert.Len(t, d.Infos, 1)
	assert.Len(t, d.Warnings, 1)
	assert.Equal(t, SeverityError, d.Errors[0].Severity)
}

func TestDiagnosticsError(t *testing.T) {
	var d Diagnostics
	d.AddError("unknown_type", `unknown field type "x"`, "color", "encoding.color.type")
	d.AddError("unknown_mark", `unknown mark "pie"`, "", "mark")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`[color] encoding.color.type: [unknown_type] unknown field type "x"; mark: [unknown_mark] unknown mark "pie"`,
		err.Error())
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics
	a.AddError("e1", "first", "", "")
	b.AddError("e2", "second", "", "")
	b.AddWarning("w1", "warn", "", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
