package codec

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"venturecode/internal/directive"
)

// DecodeMsgpack reads a MessagePack array of directives.
func DecodeMsgpack(r io.Reader) ([]directive.Directive, error) {
	// Exact wire widths: loose decoding would widen float32 to float64.
	// literalValue folds the integer widths back to int64.
	dec := msgpack.NewDecoder(r)
	var ws []wireDirective
	if err := dec.Decode(&ws); err != nil {
		return nil, fmt.Errorf("decode msgpack: %w", err)
	}
	return fromWire(ws)
}

// EncodeMsgpack writes ds as a MessagePack array with sorted holder keys.
func EncodeMsgpack(w io.Writer, ds []directive.Directive) error {
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(toWire(ds)); err != nil {
		return fmt.Errorf("encode msgpack: %w", err)
	}
	return nil
}
