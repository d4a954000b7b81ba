package expr

// ScopeIncludeTag marks a compound as a scope wrapper:
// (scope_include <scope> <block> <inner>).
const ScopeIncludeTag = "scope_include"

// Expression is a node of a directive body. The set of implementations is
// closed: Token, Literal and Compound.
type Expression interface {
	exprNode()
}

// Token is a symbolic identifier; it is rendered verbatim.
type Token string

// Literal is a value holder. Type is the wire tag ("number", "boolean", ...)
// and is not used for rendering; Value is what gets printed.
type Literal struct {
	Type  string
	Value any
}

// Compound is an application or special form. Element 0 is the operator or tag.
type Compound []Expression

func (Token) exprNode()    {}
func (Literal) exprNode()  {}
func (Compound) exprNode() {}

// Number wraps a numeric literal.
func Number(v float64) Literal {
	return Literal{Type: "number", Value: v}
}

// Boolean wraps a boolean literal.
func Boolean(v bool) Literal {
	return Literal{Type: "boolean", Value: v}
}

// Call builds a compound from an operator token and its operands.
func Call(op string, args ...Expression) Compound {
	c := make(Compound, 0, len(args)+1)
	c = append(c, Token(op))
	return append(c, args...)
}

// ScopeInclude wraps inner into a scope_include form.
func ScopeInclude(scope, block, inner Expression) Compound {
	return Compound{Token(ScopeIncludeTag), scope, block, inner}
}

// IsScopeInclude reports whether c is tagged with scope_include. Only a Token
// head counts; a literal holding the same text does not.
func (c Compound) IsScopeInclude() bool {
	if len(c) == 0 {
		return false
	}
	tok, ok := c[0].(Token)
	return ok && tok == ScopeIncludeTag
}
