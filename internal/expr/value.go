package expr

import (
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a literal's value the way a script engine's default
// toString does: shortest round-trip numbers, true/false, text as is, and
// lists joined with commas.
func FormatValue(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", &MalformedError{Kind: MalformedNoValue}
	case float64:
		return FormatNumber(x), nil
	case float32:
		return formatNumber(float64(x), 32), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case bool:
		return strconv.FormatBool(x), nil
	case string:
		return x, nil
	case []any:
		parts := make([]string, len(x))
		for i, el := range x {
			if el == nil {
				continue
			}
			s, err := FormatValue(el)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), nil
	default:
		return "", &MalformedError{Kind: MalformedValueType, Value: v}
	}
}

// FormatNumber is the default number-to-text conversion: plain decimal
// notation for magnitudes in [1e-6, 1e21), exponent notation otherwise.
func FormatNumber(f float64) string {
	return formatNumber(f, 64)
}

// formatNumber picks the shortest digits that round-trip at bitSize, so a
// float32 0.1 stays "0.1".
func formatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, bitSize)
		// 1e-07 -> 1e-7
		mant, exp, _ := strings.Cut(s, "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// FormatFixed renders f with exactly digits fractional digits. Magnitudes of
// 1e21 and above fall back to FormatNumber, and negative zero prints as zero.
func FormatFixed(f float64, digits int) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.Abs(f) >= 1e21 {
		return FormatNumber(f)
	}
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'f', digits, 64)
}
