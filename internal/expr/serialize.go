package expr

import "strings"

// Serialize renders e in parenthesised form.
//
// With displayScopes unset a scope_include wrapper collapses to its inner
// expression. Elements of a compound are always serialized with scopes
// hidden, so a scope_include below the top level is never displayed.
func Serialize(e Expression, displayScopes bool) (string, error) {
	var b strings.Builder
	if err := writeExpr(&b, e, displayScopes); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeExpr(b *strings.Builder, e Expression, displayScopes bool) error {
	switch n := e.(type) {
	case Compound:
		if n.IsScopeInclude() && !displayScopes {
			if len(n) < 4 {
				return &MalformedError{Kind: MalformedScopeArity}
			}
			return within(writeExpr(b, n[3], displayScopes), 3)
		}
		b.WriteByte('(')
		for i, el := range n {
			if i > 0 {
				b.WriteByte(' ')
			}
			if err := writeExpr(b, el, false); err != nil {
				return within(err, i)
			}
		}
		b.WriteByte(')')
		return nil
	case Token:
		b.WriteString(string(n))
		return nil
	case Literal:
		s, err := FormatValue(n.Value)
		if err != nil {
			return err
		}
		b.WriteString(s)
		return nil
	case nil:
		return &MalformedError{Kind: MalformedNilNode}
	default:
		return &MalformedError{Kind: MalformedNodeType, Value: e}
	}
}
