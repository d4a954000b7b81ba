package pretty

import (
	"bytes"
	"testing"
)

func TestListingPlain(t *testing.T) {
	var buf bytes.Buffer
	lines := []string{"[assume x 5]", "[observe (normal x 1) 1.50]"}
	if err := Listing(&buf, lines, Opts{Title: "curve.json"}); err != nil {
		t.Fatal(err)
	}
	want := "== curve.json\nVenture code:\n[assume x 5]\n[observe (normal x 1) 1.50]\n"
	if got := buf.String(); got != want {
		t.Fatalf("Listing mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"[assume x 5]", 0, "[assume x 5]"},
		{"[assume x 5]", 12, "[assume x 5]"},
		{"[assume x 5]", 10, "[assume..."},
		{"[assume x 5]", 3, "[as"},
		{"[assume 値 (f 値)]", 11, "[assume ..."},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d): want %q, got %q", tt.in, tt.width, tt.want, got)
		}
	}
}

func TestHighlightKeywordKeepsText(t *testing.T) {
	line := "[observe y 1.50]"
	got := highlightKeyword(line)
	if !bytes.Contains([]byte(got), []byte("observe")) || !bytes.HasSuffix([]byte(got), []byte(" y 1.50]")) {
		t.Fatalf("highlight changed text: %q", got)
	}
	if highlightKeyword("plain") != "plain" {
		t.Fatal("non-directive line modified")
	}
}
