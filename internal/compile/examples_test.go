package compile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartc/internal/legend"
	"chartc/internal/spec"
	"chartc/internal/vl"
)

func compileExample(t *testing.T, name string) *Result {
	t.Helper()

	c, err := spec.LoadFile(filepath.Join("..", "..", "examples", name))
	require.NoError(t, err)

	res, err := Compile(context.Background(), c, DefaultOptions())
	require.NoError(t, err)
	require.False(t, res.Diagnostics.HasErrors())

	return res
}

func TestExamplesCompile(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "examples", "*"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			compileExample(t, filepath.Base(f))
		})
	}
}

func TestExampleBinnedArea(t *testing.T) {
	res := compileExample(t, "binned-area.json")

	color := res.Legends[vl.Color]
	require.NotNil(t, color)
	assert.Equal(t, "color_legend", color.Fill)
	assert.Equal(t, "left", color.Orient)
	assert.Empty(t, color.Format, "binned legends are labeled by range")
	assert.Equal(t, vl.Props{"text": vl.ScaleData("color_legend_label")}, color.Group(legend.GroupLabels))
}

func TestExampleTextTable(t *testing.T) {
	res := compileExample(t, "text-table.yaml")

	assert.Equal(t, vl.Ptr("left"), res.MarkConfig.Align)
	assert.NotContains(t, res.Legends, vl.Color)

	shape := res.Legends[vl.Shape]
	require.NotNil(t, shape)
	assert.Equal(t, vl.Props{"stroke": vl.Const("#ccc")}, shape.Group(legend.GroupLegend))
	assert.Equal(t, vl.Const("#333"), shape.Group(legend.GroupSymbols)["fill"])
}
