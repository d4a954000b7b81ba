package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedExpression is wrapped by every MalformedError.
var ErrMalformedExpression = errors.New("malformed expression")

// MalformedKind enumerates the ways a node can fail to serialize.
type MalformedKind uint8

const (
	// MalformedNilNode is a missing node (nil interface).
	MalformedNilNode MalformedKind = iota + 1
	// MalformedNoValue is a literal whose holder carries no value.
	MalformedNoValue
	MalformedValueType
	MalformedScopeArity
	MalformedNodeType
)

// MalformedError describes a node that cannot be rendered. Path holds the
// element indexes leading from the root to the node.
type MalformedError struct {
	Kind MalformedKind
	Path []int
	// Value is the offending Go value for MalformedValueType/MalformedNodeType.
	Value any
}

func (e *MalformedError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var reason string
	switch e.Kind {
	case MalformedNilNode:
		reason = "missing node"
	case MalformedNoValue:
		reason = "literal holder has no value"
	case MalformedValueType:
		reason = fmt.Sprintf("unsupported literal value of type %T", e.Value)
	case MalformedScopeArity:
		reason = "scope_include needs scope, block and expression"
	case MalformedNodeType:
		reason = fmt.Sprintf("unsupported node type %T", e.Value)
	default:
		reason = fmt.Sprintf("kind=%d", e.Kind)
	}
	if len(e.Path) == 0 {
		return ErrMalformedExpression.Error() + ": " + reason
	}
	return ErrMalformedExpression.Error() + " at " + formatPath(e.Path) + ": " + reason
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformedExpression
}

func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, idx := range path {
		parts[i] = strconv.Itoa(idx)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// within prefixes the error path with idx when err is a MalformedError.
func within(err error, idx int) error {
	var me *MalformedError
	if errors.As(err, &me) {
		me.Path = append([]int{idx}, me.Path...)
	}
	return err
}
