// Package directive renders assume/observe/predict statements for display.
//
// Render formats one directive, IsExtraneous decides whether it belongs in a
// listing, and RenderListing assembles the HTML fragment shown on the page.
// All functions are pure and safe for concurrent use.
package directive

import "venturecode/internal/expr"

// Instruction is the directive keyword. Unknown keywords are rendered as is.
type Instruction string

const (
	// Assume binds Symbol to Expression.
	Assume Instruction = "assume"
	// Observe constrains Expression to Value.
	Observe Instruction = "observe"
	Predict Instruction = "predict"
)

// Directive is one statement of a modeled program.
type Directive struct {
	// ID is the engine's directive id; it is carried but never rendered.
	ID          int64
	Instruction Instruction
	Symbol      string // assume only
	Expression  expr.Expression
	Value       float64 // observe only
}
