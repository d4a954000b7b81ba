package ui

import (
	"strings"
	"testing"

	"venturecode/internal/pipeline"
)

func TestProgressModelTracksEvents(t *testing.T) {
	files := []string{"a.json", "b.json"}
	m := NewProgressModel("rendering 2 files", files, nil).(*progressModel)

	m.applyEvent(pipeline.Event{File: "a.json", Stage: pipeline.StageRender, Status: pipeline.StatusWorking})
	if m.items[0].status != "rendering" {
		t.Fatalf("status: %q", m.items[0].status)
	}
	if got := m.fraction(); got != 0.3 {
		t.Fatalf("fraction after one render: %v", got)
	}

	m.applyEvent(pipeline.Event{File: "a.json", Stage: pipeline.StageRender, Status: pipeline.StatusDone})
	m.applyEvent(pipeline.Event{File: "b.json", Stage: pipeline.StageDecode, Status: pipeline.StatusError})
	if got := m.fraction(); got != 1 {
		t.Fatalf("fraction when finished: %v", got)
	}
	m.applyEvent(pipeline.Event{File: "unknown.json", Status: pipeline.StatusDone})

	m.done = true
	view := m.View()
	for _, want := range []string{"done: rendering 2 files", "a.json", "b.json", "error"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestViewTruncatesLongPaths(t *testing.T) {
	long := "demos/regression/" + strings.Repeat("curve_fitting_", 8) + ".json"
	m := NewProgressModel("rendering", []string{long}, nil).(*progressModel)
	m.width = 40

	view := m.View()
	if strings.Contains(view, long) {
		t.Fatalf("path not truncated:\n%s", view)
	}
	if !strings.Contains(view, "demos/regression/curv...") {
		t.Fatalf("view lacks truncated path:\n%s", view)
	}
}
