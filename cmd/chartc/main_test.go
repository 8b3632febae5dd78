package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const barSpec = "../../internal/spec/testdata/bar.yaml"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestCompileCommand(t *testing.T) {
	out, _, err := execute(t, "compile", barSpec)
	require.NoError(t, err)

	var res struct {
		Mark       string `json:"mark"`
		MarkConfig struct {
			Filled  *bool    `json:"filled"`
			Opacity *float64 `json:"opacity"`
			Orient  *string  `json:"orient"`
		} `json:"markConfig"`
		Legends map[string]json.RawMessage `json:"legends"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	assert.Equal(t, "bar", res.Mark)
	require.NotNil(t, res.MarkConfig.Filled)
	assert.True(t, *res.MarkConfig.Filled)
	require.NotNil(t, res.MarkConfig.Opacity)
	assert.InDelta(t, 0.9, *res.MarkConfig.Opacity, 1e-9)
	assert.Nil(t, res.MarkConfig.Orient)

	require.Contains(t, res.Legends, "color")
	assert.JSONEq(t, `{
		"fill": "color_legend",
		"title": "Region",
		"orient": "left",
		"properties": {
			"symbols": {
				"shape": {"value": "square"},
				"strokeWidth": {"value": 0},
				"opacity": {"value": 0.9},
				"fill": {"scale": "color_legend", "field": "data"}
			},
			"labels": {
				"text": {"scale": "color_legend", "field": "data"},
				"fontSize": {"value": 12}
			}
		}
	}`, string(res.Legends["color"]))
}

func TestCompileCommandWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	out, _, err := execute(t, "compile", "--pretty", "-o", path, barSpec)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"mark\": \"bar\"")
}

func TestCompileCommandDump(t *testing.T) {
	out, _, err := execute(t, "compile", "--dump", barSpec)
	require.NoError(t, err)
	assert.Contains(t, out, "compile.Result")
}

func TestCompileCommandInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pie.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mark: pie\n"), 0o644))

	_, stderr, err := execute(t, "compile", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compilation failed")
	assert.Contains(t, stderr, "unknown_mark")
}

func TestValidateCommand(t *testing.T) {
	out, _, err := execute(t, "validate", barSpec)
	require.NoError(t, err)
	assert.Empty(t, out)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mark: bar\nencoding:\n  x: {field: a}\n"), 0o644))

	out, _, err = execute(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "error: [x] encoding.x.type: [missing_type] field type is required")
}

func TestCompileCommandMissingFile(t *testing.T) {
	_, _, err := execute(t, "compile", "does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read chart spec")
}
