package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, `
[render]
display_scopes = true
format = "text"
width = 60
out_dir = "site"

[trace]
level = "detail"
`)
	nested := filepath.Join(root, "demos", "curve")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := Load(nested)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if m.Path != path {
		t.Fatalf("path: want %q, got %q", path, m.Path)
	}
	cfg := m.Config
	if !cfg.Render.DisplayScopes || cfg.Render.Format != "text" || cfg.Render.Width != 60 || cfg.Render.UI != "auto" {
		t.Fatalf("render table not decoded: %+v", cfg.Render)
	}
	if want := filepath.Join(root, "site"); cfg.Render.OutDir != want {
		t.Fatalf("out_dir: want %q, got %q", want, cfg.Render.OutDir)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Trace.Level != "detail" || cfg.Trace.Format != "text" || cfg.Trace.Output != "-" {
		t.Fatalf("trace table: %+v", cfg.Trace)
	}
}

func TestLoadMissing(t *testing.T) {
	m, ok, err := Load(t.TempDir())
	if err != nil || ok || m != nil {
		t.Fatalf("want no manifest, got %v %v %v", m, ok, err)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{name: "unknown key", body: "[render]\ncolour = true\n", msg: "unknown keys: render.colour"},
		{name: "bad format", body: "[render]\nformat = \"pdf\"\n", msg: "[render].format must be html or text"},
		{name: "bad ui", body: "[render]\nui = \"sometimes\"\n", msg: "[render].ui must be auto, on or off"},
		{name: "negative width", body: "[render]\nwidth = -1\n", msg: "[render].width must not be negative"},
		{name: "syntax", body: "[render\n", msg: "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.body)
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), path+": ") || !strings.Contains(err.Error(), tt.msg) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
