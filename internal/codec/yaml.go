package codec

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"venturecode/internal/directive"
)

// DecodeYAML reads a sequence of directives, or a mapping with a
// "directives" sequence, from hand-written YAML lists.
func DecodeYAML(r io.Reader) ([]directive.Directive, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []directive.Directive{}, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return []directive.Directive{}, nil
	}

	root := doc.Content[0]
	var ws []wireDirective
	if root.Kind == yaml.MappingNode {
		var page pageData
		if err := root.Decode(&page); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		ws = page.Directives
	} else if err := root.Decode(&ws); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return fromWire(ws)
}

// EncodeYAML writes ds as a YAML sequence.
func EncodeYAML(w io.Writer, ds []directive.Directive) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toWire(ds)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
