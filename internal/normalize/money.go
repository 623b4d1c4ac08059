package normalize

import (
	"math"
	"strconv"
	"strings"
)

// Money coerces a cell to a number. Missing or non-numeric input becomes 0;
// the result is never NaN or infinite.
func Money(v any) float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case string:
		f = parseNumber(x)
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// NonNegative clamps negative amounts to zero; transaction totals are
// never negative.
func NonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}

// parseNumber accepts plain numbers ("1234.5"), thousands separated
// numbers ("1,234.50") and pt-BR numbers ("1.234,50", "R$ 10,00").
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma > lastDot && (lastDot >= 0 || commaIsDecimal(s, lastComma)):
		// pt-BR: dots group thousands, comma marks decimals
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	default:
		s = strings.ReplaceAll(s, ",", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// commaIsDecimal decides the role of a lone comma separator: "10,00" and
// "1,5" are decimals, "1,000" and "1,000,000" group thousands.
func commaIsDecimal(s string, lastComma int) bool {
	if strings.Count(s, ",") > 1 {
		return false
	}
	return len(s)-lastComma-1 != 3
}
