package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"venturecode/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "venturecode",
	Short: "Render Venture directive listings",
	Long:  `venturecode turns assume/observe/predict directive lists into the annotated listing shown on demo pages`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		mode, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return err
		}
		useColor, err := colorEnabled(mode, os.Stdout)
		if err != nil {
			return err
		}
		color.NoColor = !useColor
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)

	addPersistentFlags(rootCmd)
}

func main() {
	rootCmd.Version = version.Version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "path to venture.toml (default: search upwards from the working directory)")
	cmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	cmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	cmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	cmd.PersistentFlags().String("trace-format", "text", "trace format (text|ndjson)")
	cmd.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both); ring is dumped on failure")
	cmd.PersistentFlags().Bool("timings", false, "print per-file stage timings to stderr")
	cmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	cmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this file on exit")
	cmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to this file")
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// switchMode is the auto|on|off setting shared by --color and --ui; auto
// follows whether the stream is a terminal.
type switchMode string

const (
	switchAuto switchMode = "auto"
	switchOn   switchMode = "on"
	switchOff  switchMode = "off"
)

func parseSwitch(name, value string) (switchMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return switchAuto, nil
	case "on":
		return switchOn, nil
	case "off":
		return switchOff, nil
	default:
		return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", name, value)
	}
}

func (m switchMode) enabled(f *os.File) bool {
	switch m {
	case switchOn:
		return true
	case switchOff:
		return false
	default:
		return isTerminal(f)
	}
}

func colorEnabled(value string, f *os.File) (bool, error) {
	mode, err := parseSwitch("color", value)
	if err != nil {
		return false, err
	}
	return mode.enabled(f), nil
}
