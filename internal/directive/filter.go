package directive

// internalSymbols are bookkeeping assumes made by the demo pages.
var internalSymbols = map[string]struct{}{
	"demo_id":       {},
	"model_type":    {},
	"use_outliers":  {},
	"infer_noise":   {},
	"outlier_prob":  {},
	"show_scopes":   {},
	"outlier_sigma": {},
}

// IsExtraneous reports whether d is hidden from listings: every predict, and
// assumes of internal bookkeeping symbols.
func IsExtraneous(d Directive) bool {
	switch d.Instruction {
	case Predict:
		return true
	case Assume:
		_, ok := internalSymbols[d.Symbol]
		return ok
	default:
		return false
	}
}
