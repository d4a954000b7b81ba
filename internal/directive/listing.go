package directive

import (
	"fmt"
	"strings"
)

const (
	// ListingHeader opens every listing.
	ListingHeader = "<b>Venture code:</b><br>"
	// LineBreak terminates each rendered directive in a listing.
	LineBreak = "<br/>"
)

// Lines renders the directives that are not extraneous, in input order.
func Lines(ds []Directive, displayScopes bool) ([]string, error) {
	lines := make([]string, 0, len(ds))
	for i, d := range ds {
		if IsExtraneous(d) {
			continue
		}
		line, err := Render(d, displayScopes)
		if err != nil {
			return nil, fmt.Errorf("directive %d: %w", i, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// RenderListing builds the HTML fragment: the header followed by one line per
// shown directive. Symbols and tokens are not escaped. On error nothing is
// returned.
func RenderListing(ds []Directive, displayScopes bool) (string, error) {
	lines, err := Lines(ds, displayScopes)
	if err != nil {
		return "", err
	}
	return FormatListing(lines), nil
}

// FormatListing wraps already rendered lines into the listing fragment.
func FormatListing(lines []string) string {
	var b strings.Builder
	b.WriteString(ListingHeader)
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(LineBreak)
	}
	return b.String()
}
