// Package project locates and loads venture.toml, the per-directory settings
// file for the venturecode CLI.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file looked up from the working directory upwards.
const ManifestName = "venture.toml"

// Manifest is a loaded venture.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the manifest tables.
type Config struct {
	Render RenderConfig `toml:"render"`
	Trace  TraceConfig  `toml:"trace"`
}

type RenderConfig struct {
	DisplayScopes bool   `toml:"display_scopes"`
	Format        string `toml:"format"` // html | text
	Width         int    `toml:"width"`  // text mode only, 0 = no truncation
	Jobs          int    `toml:"jobs"`   // 0 = GOMAXPROCS
	OutDir        string `toml:"out_dir"`
	// UI selects the progress view when writing to OutDir: auto | on | off.
	UI string `toml:"ui"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
	Format string `toml:"format"`
	Mode   string `toml:"mode"`
}

// Defaults is the configuration used when no manifest exists; manifest
// values are decoded on top of it.
func Defaults() Config {
	return Config{
		Render: RenderConfig{Format: "html", UI: "auto"},
		Trace:  TraceConfig{Level: "off", Output: "-", Format: "text", Mode: "stream"},
	}
}

// Find walks up from startDir looking for ManifestName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load finds and reads the manifest above startDir. ok is false when there
// is none; the caller then uses Defaults.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := LoadFile(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// LoadFile reads the manifest at path. A relative out_dir is resolved
// against the manifest directory.
func LoadFile(path string) (*Manifest, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	root := filepath.Dir(path)
	if cfg.Render.OutDir != "" && !filepath.IsAbs(cfg.Render.OutDir) {
		cfg.Render.OutDir = filepath.Join(root, filepath.FromSlash(cfg.Render.OutDir))
	}
	return &Manifest{Path: path, Root: root, Config: cfg}, nil
}

// Validate checks values that TOML typing cannot.
func (c Config) Validate() error {
	switch c.Render.Format {
	case "html", "text":
	default:
		return fmt.Errorf("[render].format must be html or text, got %q", c.Render.Format)
	}
	switch c.Render.UI {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[render].ui must be auto, on or off, got %q", c.Render.UI)
	}
	if c.Render.Width < 0 {
		return fmt.Errorf("[render].width must not be negative, got %d", c.Render.Width)
	}
	if c.Render.Jobs < 0 {
		return fmt.Errorf("[render].jobs must not be negative, got %d", c.Render.Jobs)
	}
	return nil
}
