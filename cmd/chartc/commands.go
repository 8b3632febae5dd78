package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"chartc/internal/compile"
	"chartc/internal/diagnostic"
	"chartc/internal/spec"
)

const filePerm = 0o644

type compileFlags struct {
	output      string
	pretty      bool
	dump        bool
	verbose     bool
	scalePrefix string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chartc",
		Short:         "Compile chart specifications into mark and legend definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCompileCmd(), newValidateCmd())

	return root
}

func newCompileCmd() *cobra.Command {
	var flags compileFlags

	cmd := &cobra.Command{
		Use:   "compile [spec.yaml|spec.json]",
		Short: "Resolve mark defaults and compile legends",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&flags.dump, "dump", false, "Dump the compiled result as Go values instead of JSON")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log each compilation stage")
	cmd.Flags().StringVar(&flags.scalePrefix, "scale-prefix", "", "Prefix for allocated scale names")

	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [spec.yaml|spec.json]",
		Short: "Check a chart specification without compiling it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := spec.LoadFile(args[0])
			if err != nil {
				return err
			}

			diags := spec.Validate(chart)
			printDiagnostics(cmd.OutOrStdout(), diags)

			return diags.Error()
		},
	}
}

func runCompile(cmd *cobra.Command, path string, flags compileFlags) error {
	chart, err := spec.LoadFile(path)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}

	opts := compile.DefaultOptions()
	opts.ScalePrefix = flags.scalePrefix
	opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	res, err := compile.Compile(cmd.Context(), chart, opts)
	if err != nil {
		if errors.Is(err, compile.ErrInvalidChart) {
			printDiagnostics(cmd.ErrOrStderr(), &res.Diagnostics)
		}

		return fmt.Errorf("compilation failed: %w", err)
	}

	for _, w := range res.Diagnostics.Warnings {
		opts.Logger.Warn(w.Message, slog.String("code", w.Code), slog.String("path", w.Path))
	}

	var data []byte

	switch {
	case flags.dump:
		data = []byte(spew.Sdump(res))
	case flags.pretty:
		data, err = json.MarshalIndent(res, "", "  ")
	default:
		data, err = json.Marshal(res)
	}

	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, data, filePerm); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}

		return nil
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return err
}

func printDiagnostics(w io.Writer, d *diagnostic.Diagnostics) {
	for _, group := range [][]diagnostic.Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			fmt.Fprintf(w, "%s: %s\n", diag.Severity, diag)
		}
	}
}
