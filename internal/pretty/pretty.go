// Package pretty prints rendered directive listings to a terminal.
package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Header is the text-mode counterpart of the HTML listing header.
const Header = "Venture code:"

// Opts control terminal output.
type Opts struct {
	Color bool
	// Width truncates lines to this many display cells; 0 disables.
	Width int
	// Title, when set, is printed above the header (e.g. the file name).
	Title string
}

var (
	titleStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	keywordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Listing writes the header and one rendered directive per line.
func Listing(w io.Writer, lines []string, opts Opts) error {
	if opts.Title != "" {
		if _, err := fmt.Fprintln(w, style(titleStyle, "== "+opts.Title, opts.Color)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, style(headerStyle, Header, opts.Color)); err != nil {
		return err
	}
	for _, line := range lines {
		line = Truncate(line, opts.Width)
		if opts.Color {
			line = highlightKeyword(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Truncate shortens value to width display cells, ending with "...".
func Truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}

// highlightKeyword styles the instruction right after the opening bracket.
func highlightKeyword(line string) string {
	if !strings.HasPrefix(line, "[") {
		return line
	}
	end := strings.IndexAny(line, " ]")
	if end <= 1 {
		return line
	}
	return "[" + keywordStyle.Render(line[1:end]) + line[end:]
}

func style(s lipgloss.Style, text string, color bool) string {
	if !color {
		return text
	}
	return s.Render(text)
}
