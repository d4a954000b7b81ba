package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"venturecode/internal/directive"
)

// pageData is the object form embedded in demo pages.
type pageData struct {
	Directives []wireDirective `json:"directives" yaml:"directives"`
}

// DecodeJSON reads either a bare array of directives or an object with a
// "directives" array.
func DecodeJSON(r io.Reader) ([]directive.Directive, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	raw = bytes.TrimSpace(raw)

	var ws []wireDirective
	if len(raw) > 0 && raw[0] == '{' {
		var page pageData
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		ws = page.Directives
	} else if err := json.Unmarshal(raw, &ws); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return fromWire(ws)
}

// EncodeJSON writes ds as an indented JSON array.
func EncodeJSON(w io.Writer, ds []directive.Directive) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toWire(ds))
}
