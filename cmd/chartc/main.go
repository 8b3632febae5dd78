// Package main provides the CLI entrypoint for chartc.
//
// chartc compiles a declarative chart specification into resolved mark
// configuration and legend definitions for a lower-level rendering grammar:
//   - compile: print the resolved mark config and legends as JSON
//   - validate: report structural problems in a chart specification
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
