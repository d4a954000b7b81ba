package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"venturecode/internal/codec"
	"venturecode/internal/trace"
)

var convertCmd = &cobra.Command{
	Use:     "convert in out",
	Aliases: []string{"pack"},
	Short:   "Convert a directive file between JSON, MessagePack and YAML",
	Long:    `Convert decodes in and re-encodes it as out; both formats are chosen by file extension (.json, .msgpack, .mp, .yaml, .yml).`,
	Args:    cobra.ExactArgs(2),
	RunE:    runConvert,
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cleanup, err := setupTracing(cmd, s.Trace)
	if err != nil {
		return err
	}
	defer func() { cleanup(err != nil) }()

	ctx, span := trace.BeginContext(cmd.Context(), trace.ScopeCommand, "convert")
	defer span.End("")

	in, out := args[0], args[1]
	outFormat, err := codec.FormatForPath(out)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	ds, err := codec.Decode(in, bytes.NewReader(data))
	if err != nil {
		trace.Fail(ctx, trace.ScopeFile, in, err)
		return fmt.Errorf("%s: %w", in, err)
	}

	var buf bytes.Buffer
	err = codec.Encode(&buf, outFormat, ds)
	if err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return err
	}
	span.WithExtra("directives", fmt.Sprint(len(ds)))
	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d directives, %s)\n", in, out, len(ds), outFormat)
	return nil
}
