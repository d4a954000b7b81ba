package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"venturecode/internal/codec"
	"venturecode/internal/project"
	"venturecode/internal/version"
)

// buildReport is what `venturecode version` prints: the build stamp plus the
// inputs a render in the current directory would use.
type buildReport struct {
	Version  string         `json:"version"`
	Commit   string         `json:"commit,omitempty"`
	Built    string         `json:"built,omitempty"`
	Formats  []formatReport `json:"formats"`
	Manifest string         `json:"manifest,omitempty"`
}

type formatReport struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the build, supported directive formats and the manifest in effect",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("json", false, "print the report as JSON")
}

func runVersion(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json flag: %w", err)
	}
	report, err := collectBuildReport(cmd)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return writeBuildReport(cmd.OutOrStdout(), report)
}

func collectBuildReport(cmd *cobra.Command) (buildReport, error) {
	r := buildReport{
		Version: version.Version,
		Commit:  version.GitCommit,
		Built:   version.BuildDate,
	}
	for _, f := range codec.Formats() {
		r.Formats = append(r.Formats, formatReport{Name: f.String(), Extensions: f.Extensions()})
	}

	// Only locate the manifest; a broken one is render's problem to report.
	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return r, fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath != "" {
		if r.Manifest, err = filepath.Abs(configPath); err != nil {
			return r, err
		}
		return r, nil
	}
	path, ok, err := project.Find(".")
	if err != nil {
		return r, err
	}
	if ok {
		r.Manifest = path
	}
	return r, nil
}

func writeBuildReport(w io.Writer, r buildReport) error {
	stamp := version.Colored()
	var meta []string
	if r.Commit != "" {
		meta = append(meta, "commit "+r.Commit)
	}
	if r.Built != "" {
		meta = append(meta, "built "+r.Built)
	}
	if len(meta) > 0 {
		stamp += " (" + strings.Join(meta, ", ") + ")"
	}

	formats := make([]string, len(r.Formats))
	for i, f := range r.Formats {
		formats[i] = f.Name + " (" + strings.Join(f.Extensions, ", ") + ")"
	}
	manifest := r.Manifest
	if manifest == "" {
		manifest = "none, using defaults"
	}

	_, err := fmt.Fprintf(w, "venturecode %s\nformats:  %s\nmanifest: %s\n",
		stamp, strings.Join(formats, ", "), manifest)
	return err
}
