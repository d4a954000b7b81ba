package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"venturecode/internal/project"
	"venturecode/internal/trace"
)

// setupTracing builds the tracer described by cfg and attaches it to the
// command context. The returned cleanup dumps the in-memory ring to stderr
// when failed is set, then flushes and closes the tracer.
func setupTracing(cmd *cobra.Command, cfg project.TraceConfig) (cleanup func(failed bool), err error) {
	level, err := trace.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func(bool) {}, nil
	}
	mode, err := trace.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	format, err := trace.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: cfg.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	return func(failed bool) {
		if ring, ok := trace.Ring(tracer); ok && failed {
			fmt.Fprintln(cmd.ErrOrStderr(), "trace: last events before failure")
			if err := ring.Dump(cmd.ErrOrStderr(), format); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
			}
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}
