package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"venturecode/internal/project"
)

// settings is the manifest merged with explicitly set flags.
type settings struct {
	Render project.RenderConfig
	Trace  project.TraceConfig
	// ManifestPath is empty when no venture.toml was used.
	ManifestPath string
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	root := cmd.Root().PersistentFlags()
	configPath, err := root.GetString("config")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	var manifest *project.Manifest
	if configPath != "" {
		manifest, err = project.LoadFile(configPath)
	} else {
		manifest, _, err = project.Load(".")
	}
	if err != nil {
		return settings{}, err
	}

	s := settings{Render: project.Defaults().Render, Trace: project.Defaults().Trace}
	if manifest != nil {
		s.Render = manifest.Config.Render
		s.Trace = manifest.Config.Trace
		s.ManifestPath = manifest.Path
	}
	if err := applyFlags(cmd, &s); err != nil {
		return settings{}, err
	}
	cfg := project.Config{Render: s.Render, Trace: s.Trace}
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}
	return s, nil
}

// applyFlags overrides s with every flag the user set explicitly.
func applyFlags(cmd *cobra.Command, s *settings) error {
	flags := cmd.Flags()
	var err error
	if flags.Lookup("scopes") != nil && flags.Changed("scopes") {
		if s.Render.DisplayScopes, err = flags.GetBool("scopes"); err != nil {
			return err
		}
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		if s.Render.Format, err = flags.GetString("format"); err != nil {
			return err
		}
	}
	if flags.Lookup("width") != nil && flags.Changed("width") {
		if s.Render.Width, err = flags.GetInt("width"); err != nil {
			return err
		}
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		if s.Render.Jobs, err = flags.GetInt("jobs"); err != nil {
			return err
		}
	}
	if flags.Lookup("ui") != nil && flags.Changed("ui") {
		if s.Render.UI, err = flags.GetString("ui"); err != nil {
			return err
		}
		// The manifest check only knows the canonical spellings.
		var mode switchMode
		if mode, err = parseSwitch("ui", s.Render.UI); err != nil {
			return err
		}
		s.Render.UI = string(mode)
	}
	if flags.Lookup("out-dir") != nil && flags.Changed("out-dir") {
		if s.Render.OutDir, err = flags.GetString("out-dir"); err != nil {
			return err
		}
	}

	root := cmd.Root().PersistentFlags()
	for name, dst := range map[string]*string{
		"trace":        &s.Trace.Output,
		"trace-level":  &s.Trace.Level,
		"trace-format": &s.Trace.Format,
		"trace-mode":   &s.Trace.Mode,
	} {
		if !root.Changed(name) {
			continue
		}
		if *dst, err = root.GetString(name); err != nil {
			return err
		}
	}
	// --trace alone means "trace something".
	if root.Changed("trace") && !root.Changed("trace-level") && s.Trace.Level == "off" {
		s.Trace.Level = "phase"
	}
	return nil
}
