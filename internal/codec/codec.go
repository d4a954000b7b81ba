// Package codec reads and writes directive lists in the engine's wire form.
//
// The wire form mirrors the engine's list_directives output: an array of
// objects with directive_id, instruction, symbol, expression and value.
// Expressions are nested arrays of strings (symbols) and {"type","value"}
// holders (literals). JSON, MessagePack and YAML carry the same model.
package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"venturecode/internal/directive"
)

var (
	// ErrInvalidDirective is wrapped by every decoding error that concerns
	// the content of a directive rather than the encoding itself.
	ErrInvalidDirective = errors.New("invalid directive")
	// ErrUnknownFormat is returned by Decode for unrecognised file extensions.
	ErrUnknownFormat = errors.New("unknown directive file format")
)

// Format selects a wire encoding.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatMsgpack
	FormatYAML
)

var formatExtensions = []struct {
	format Format
	exts   []string
}{
	{FormatJSON, []string{".json"}},
	{FormatMsgpack, []string{".msgpack", ".mp"}},
	{FormatYAML, []string{".yaml", ".yml"}},
}

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Extensions lists the file extensions FormatForPath maps to f.
func (f Format) Extensions() []string {
	for _, fe := range formatExtensions {
		if fe.format == f {
			return slices.Clone(fe.exts)
		}
	}
	return nil
}

// Formats returns every supported encoding.
func Formats() []Format {
	out := make([]Format, len(formatExtensions))
	for i, fe := range formatExtensions {
		out[i] = fe.format
	}
	return out
}

// FormatForPath picks the encoding from a file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var known []string
	for _, fe := range formatExtensions {
		if slices.Contains(fe.exts, ext) {
			return fe.format, nil
		}
		known = append(known, fe.exts...)
	}
	return 0, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownFormat, path, strings.Join(known, ", "))
}

// Decode reads a directive list from r, choosing the encoding by path.
func Decode(path string, r io.Reader) ([]directive.Directive, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatJSON:
		return DecodeJSON(r)
	case FormatYAML:
		return DecodeYAML(r)
	default:
		return DecodeMsgpack(r)
	}
}

// Encode writes ds to w in the given format.
func Encode(w io.Writer, format Format, ds []directive.Directive) error {
	switch format {
	case FormatJSON:
		return EncodeJSON(w, ds)
	case FormatMsgpack:
		return EncodeMsgpack(w, ds)
	case FormatYAML:
		return EncodeYAML(w, ds)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}
