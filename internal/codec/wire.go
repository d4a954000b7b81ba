package codec

import (
	"errors"
	"fmt"
	"math"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"

	"venturecode/internal/directive"
	"venturecode/internal/expr"
)

type wireDirective struct {
	ID          any    `json:"directive_id,omitempty" msgpack:"directive_id,omitempty" yaml:"directive_id,omitempty"`
	Instruction string `json:"instruction" msgpack:"instruction" yaml:"instruction"`
	Symbol      string `json:"symbol,omitempty" msgpack:"symbol,omitempty" yaml:"symbol,omitempty"`
	Expression  any    `json:"expression" msgpack:"expression" yaml:"expression"`
	Value       any    `json:"value,omitempty" msgpack:"value,omitempty" yaml:"value,omitempty"`
}

// symbolType is the holder tag the engine uses for bare identifiers.
const symbolType = "symbol"

func fromWire(ws []wireDirective) ([]directive.Directive, error) {
	out := make([]directive.Directive, 0, len(ws))
	for i := range ws {
		d, err := directiveFromWire(&ws[i])
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrInvalidDirective, i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func directiveFromWire(w *wireDirective) (directive.Directive, error) {
	d := directive.Directive{
		Instruction: directive.Instruction(norm.NFC.String(w.Instruction)),
		Symbol:      norm.NFC.String(w.Symbol),
	}
	if d.Instruction == "" {
		return d, errors.New("missing instruction")
	}
	if w.ID != nil {
		id, err := integerOf(w.ID)
		if err != nil {
			return d, fmt.Errorf("directive_id: %w", err)
		}
		d.ID = id
	}
	e, err := exprFromWire(w.Expression)
	if err != nil {
		return d, fmt.Errorf("expression: %w", err)
	}
	d.Expression = e

	switch v := holderValue(w.Value).(type) {
	case float64:
		d.Value = v
	case float32:
		d.Value = float64(v)
	case int64:
		d.Value = float64(v)
	case uint64:
		d.Value = float64(v)
	case nil:
		if d.Instruction == directive.Observe {
			return d, errors.New("observe without value")
		}
	default:
		if d.Instruction == directive.Observe {
			return d, fmt.Errorf("observe value has type %T, want number", v)
		}
	}
	return d, nil
}

// exprError locates a decoding failure inside a nested expression.
type exprError struct {
	path []int
	msg  string
}

func (e *exprError) Error() string {
	if len(e.path) == 0 {
		return e.msg
	}
	return fmt.Sprintf("%v: %s", e.path, e.msg)
}

func exprFromWire(v any) (expr.Expression, error) {
	switch x := v.(type) {
	case nil:
		// Left for the serializer to reject.
		return nil, nil
	case string:
		return expr.Token(norm.NFC.String(x)), nil
	case []any:
		c := make(expr.Compound, len(x))
		for i, el := range x {
			e, err := exprFromWire(el)
			if err != nil {
				var ee *exprError
				if errors.As(err, &ee) {
					ee.path = append([]int{i}, ee.path...)
				}
				return nil, err
			}
			c[i] = e
		}
		return c, nil
	case map[string]any:
		typ, _ := x["type"].(string)
		val, ok := x["value"]
		if typ == symbolType {
			if s, isText := val.(string); isText {
				return expr.Token(norm.NFC.String(s)), nil
			}
		}
		if !ok {
			return expr.Literal{Type: typ}, nil
		}
		return expr.Literal{Type: typ, Value: holderLiteral(typ, val)}, nil
	default:
		return nil, &exprError{msg: fmt.Sprintf("bare %T is not a symbol, list or value holder", v)}
	}
}

// literalValue normalises decoded scalars: holders are unwrapped, integers
// become int64 where they fit, float32 is kept so it prints at its own
// precision, text is NFC.
func literalValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return literalValue(x["value"])
	case []any:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = literalValue(el)
		}
		return out
	case string:
		return norm.NFC.String(x)
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		if n, err := safecast.Conv[int64](x); err == nil {
			return n
		}
		return x
	default:
		return v
	}
}

// holderLiteral keeps "number" holders floating point even when the
// encoding dropped the fraction (YAML writes 1.0 as 1).
func holderLiteral(typ string, v any) any {
	val := literalValue(v)
	if typ != "number" {
		return val
	}
	switch n := val.(type) {
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	}
	return val
}

func holderValue(v any) any {
	if m, ok := v.(map[string]any); ok {
		return literalValue(m["value"])
	}
	return literalValue(v)
}

func integerOf(v any) (int64, error) {
	switch x := literalValue(v).(type) {
	case int64:
		return x, nil
	case uint64:
		return safecast.Conv[int64](x)
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("%v is not an integer", x)
		}
		return safecast.Convert[int64](x)
	case float32:
		return integerOf(float64(x))
	default:
		return 0, fmt.Errorf("unexpected %T", v)
	}
}

func toWire(ds []directive.Directive) []wireDirective {
	out := make([]wireDirective, len(ds))
	for i, d := range ds {
		w := wireDirective{
			Instruction: string(d.Instruction),
			Symbol:      d.Symbol,
			Expression:  exprToWire(d.Expression),
		}
		if d.ID != 0 {
			w.ID = d.ID
		}
		if d.Instruction == directive.Observe {
			w.Value = d.Value
		}
		out[i] = w
	}
	return out
}

func exprToWire(e expr.Expression) any {
	switch n := e.(type) {
	case expr.Token:
		return string(n)
	case expr.Compound:
		out := make([]any, len(n))
		for i, el := range n {
			out[i] = exprToWire(el)
		}
		return out
	case expr.Literal:
		typ := n.Type
		if typ == "" {
			typ = literalType(n.Value)
		}
		h := map[string]any{"type": typ}
		if n.Value != nil {
			h["value"] = n.Value
		}
		return h
	default:
		return nil
	}
}

func literalType(v any) string {
	switch v.(type) {
	case bool:
		return "boolean"
	case int, int64, uint64:
		return "integer"
	case string:
		return "string"
	case []any:
		return "list"
	default:
		return "number"
	}
}
