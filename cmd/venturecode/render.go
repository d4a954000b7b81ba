package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"venturecode/internal/pipeline"
	"venturecode/internal/pretty"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] file...",
	Short: "Render directive files as Venture code listings",
	Long: `Render reads directive lists (.json, .msgpack, .yaml) and prints the Venture code
listing for each. With --out-dir the HTML listings are written to <out-dir>/<name>.html.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	addRenderFlags(renderCmd)
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("scopes", false, "show scope_include wrappers instead of unwrapping them")
	cmd.Flags().String("format", "html", "output format (html|text)")
	cmd.Flags().Int("width", 0, "truncate text lines to this many columns (0 = no limit)")
	cmd.Flags().String("out-dir", "", "write <name>.html listings to this directory")
	cmd.Flags().Int("jobs", 0, "max files rendered in parallel (0 = GOMAXPROCS)")
	cmd.Flags().String("ui", "auto", "progress UI when writing to --out-dir (auto|on|off, default from [render].ui)")
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	uiMode, err := parseSwitch("ui", s.Render.UI)
	if err != nil {
		return err
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
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

	req := &pipeline.Request{
		Files:         args,
		DisplayScopes: s.Render.DisplayScopes,
		OutDir:        s.Render.OutDir,
		Jobs:          s.Render.Jobs,
	}

	var res pipeline.Result
	if req.OutDir != "" && uiMode.enabled(os.Stdout) {
		res, err = runRenderWithUI(cmd.Context(), cmd.OutOrStdout(), req)
	} else {
		res, err = pipeline.Render(cmd.Context(), req)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range res.Files {
		if f.Err != nil {
			continue
		}
		if req.OutDir != "" {
			fmt.Fprintf(out, "%s -> %s\n", f.Path, f.OutPath)
			continue
		}
		if err := printListing(out, f, s.Render.Format, s.Render.Width, len(res.Files) > 1); err != nil {
			return err
		}
	}

	if showTimings {
		for _, f := range res.Files {
			if err := printStageTimings(cmd.ErrOrStderr(), f); err != nil {
				return err
			}
		}
	}

	failed := res.Failed()
	if len(failed) == 0 {
		return nil
	}
	errOut := cmd.ErrOrStderr()
	for _, f := range failed {
		fmt.Fprintf(errOut, "%s %s: %v\n", color.RedString("error:"), f.Path, f.Err)
	}
	if len(failed) == 1 {
		return errors.New("1 file failed to render")
	}
	return fmt.Errorf("%d files failed to render", len(failed))
}

func printListing(out io.Writer, f pipeline.FileResult, format string, width int, titled bool) error {
	if format == "text" {
		opts := pretty.Opts{Color: !color.NoColor, Width: width}
		if titled {
			opts.Title = f.Path
		}
		return pretty.Listing(out, f.Lines, opts)
	}
	_, err := fmt.Fprintln(out, f.Listing)
	return err
}
