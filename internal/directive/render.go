package directive

import (
	"fmt"
	"strings"

	"venturecode/internal/expr"
)

// operatorSymbols are applied in order to the whole rendered directive.
// Replacement is plain substring replacement: "addenda" becomes "+enda".
var operatorSymbols = [...]struct{ name, symbol string }{
	{"add", "+"},
	{"sub", "-"},
	{"mul", "*"},
	{"div", "/"},
}

// Render formats d as "[instruction symbol expression value]", where the
// symbol appears only for assume and the value only for observe.
func Render(d Directive, displayScopes bool) (string, error) {
	body, err := expr.Serialize(d.Expression, displayScopes)
	if err != nil {
		return "", fmt.Errorf("%s: %w", d.label(), err)
	}

	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(string(d.Instruction))
	b.WriteByte(' ')
	if d.Instruction == Assume {
		b.WriteString(d.Symbol)
		b.WriteByte(' ')
	}
	b.WriteString(body)
	if d.Instruction == Observe {
		b.WriteByte(' ')
		b.WriteString(expr.FormatFixed(d.Value, 2))
	}
	b.WriteByte(']')

	return substituteOperators(b.String()), nil
}

func substituteOperators(s string) string {
	// strings.Replacer is single pass; each replacement must see the
	// output of the previous one.
	for _, op := range operatorSymbols {
		s = strings.ReplaceAll(s, op.name, op.symbol)
	}
	return s
}

func (d Directive) label() string {
	if d.Instruction == Assume && d.Symbol != "" {
		return string(d.Instruction) + " " + d.Symbol
	}
	return string(d.Instruction)
}
