package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestStreamTracerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)
	ctx := WithTracer(context.Background(), tr)

	ctx, cmd := BeginContext(ctx, ScopeCommand, "render")
	fctx, file := BeginContext(ctx, ScopeFile, "a.json")
	_, stage := BeginContext(fctx, ScopeStage, "decode")
	stage.End("")
	file.WithExtra("lines", "3").End("ok")
	cmd.End("")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("want 4 events (stage filtered), got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "→ render") {
		t.Errorf("first event: %q", lines[0])
	}
	if !strings.Contains(lines[1], "  → a.json") {
		t.Errorf("file begin not nested: %q", lines[1])
	}
	if !strings.Contains(lines[2], "← a.json (ok)") || !strings.HasSuffix(lines[2], "{lines=3}") {
		t.Errorf("file end: %q", lines[2])
	}
	if stage.ID() != 0 {
		t.Errorf("filtered span should be inert, got id %d", stage.ID())
	}
}

func TestFailPassesErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelError, FormatNDJSON)
	ctx := WithTracer(context.Background(), tr)

	Point(ctx, ScopeCommand, "ignored", "")
	Fail(ctx, ScopeFile, "b.json", errors.New("boom"))
	Fail(ctx, ScopeFile, "c.json", nil)

	var ev struct {
		Kind   string `json:"kind"`
		Scope  string `json:"scope"`
		Name   string `json:"name"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("want exactly one ndjson event, got %q: %v", buf.String(), err)
	}
	if ev.Kind != "error" || ev.Scope != "file" || ev.Name != "b.json" || ev.Detail != "boom" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestRingTracerWraps(t *testing.T) {
	r := NewRingTracer(2, LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		r.Emit(&Event{Kind: KindPoint, Scope: ScopeStage, Name: name})
	}
	got := r.Snapshot()
	if len(got) != 2 || got[0].Name != "b" || got[1].Name != "c" {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 2 {
		t.Fatalf("dump: %q", buf.String())
	}
}

func TestNewSelectsTracer(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr != Nop {
		t.Fatalf("LevelOff: got %T, %v", tr, err)
	}
	var buf bytes.Buffer
	tr, err = New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := Ring(tr); !ok {
		t.Fatalf("ModeBoth should expose a ring, got %T", tr)
	}
	Begin(tr, ScopeCommand, "pack", 0).End("")
	if buf.Len() == 0 {
		t.Fatal("stream half received nothing")
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "DEBUG"} {
		l, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if l.String() != strings.ToLower(s) {
			t.Fatalf("round trip %q -> %q", s, l)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error")
	}
}
