package compile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"chartc/internal/diagnostic"
	"chartc/internal/legend"
	"chartc/internal/markconfig"
	"chartc/internal/model"
	"chartc/internal/spec"
	"chartc/internal/vl"
)

// ErrInvalidChart indicates the chart failed validation.
var ErrInvalidChart = errors.New("invalid chart")

// Options holds configuration for the compilation pipeline.
type Options struct {
	// ScalePrefix is prepended to every allocated scale name.
	ScalePrefix string
	// Scales, when set, replaces the default scale-name allocation.
	Scales model.ScaleNames
	// Logger receives debug output for each pipeline stage.
	Logger *slog.Logger
}

// DefaultOptions returns the default compilation options.
func DefaultOptions() Options {
	return Options{
		Logger: slog.Default(),
	}
}

// Result is the output of compiling one chart.
type Result struct {
	Mark        vl.Mark                           `json:"mark"`
	MarkConfig  vl.MarkConfig                     `json:"markConfig"`
	Scales      model.ScaleNames                  `json:"scales"`
	Legends     map[vl.Channel]*legend.Definition `json:"legends,omitempty"`
	Diagnostics diagnostic.Diagnostics            `json:"-"`
}

// Compile compiles c. Validation problems are returned in the result's
// diagnostics together with ErrInvalidChart.
func Compile(ctx context.Context, c *spec.Chart, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	diags := spec.Validate(c)
	if diags.HasErrors() {
		return &Result{Diagnostics: *diags}, fmt.Errorf("%w: %w", ErrInvalidChart, diags.Error())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	markCfg := markconfig.Resolve(c.Mark, c.Encoding, c.Config.Mark)
	log.DebugContext(ctx, "resolved mark config",
		slog.String("mark", c.Mark.String()),
		slog.Bool("filled", markCfg.IsFilled()),
		slog.String("orient", markCfg.Orientation()),
	)

	scales := opts.Scales
	if scales == nil {
		scales = model.DefaultScaleNames(c.Encoding, opts.ScalePrefix)
	}

	cfg := c.Config
	cfg.Mark = markCfg

	m := model.New(c.Mark, c.Encoding, cfg, scales)

	legends, err := legend.CompileAll(m)
	if err != nil {
		return nil, fmt.Errorf("compile legends: %w", err)
	}

	for ch, def := range legends {
		log.DebugContext(ctx, "compiled legend",
			slog.String("channel", ch.String()),
			slog.String("title", def.Title),
			slog.Int("groups", len(def.Properties)),
		)
	}

	return &Result{
		Mark:        c.Mark,
		MarkConfig:  markCfg,
		Scales:      scales,
		Legends:     legends,
		Diagnostics: *diags,
	}, nil
}
