// Package format renders amounts and counts the way the dashboard shows
// them to Brazilian users, and folds text for accent-insensitive search.
package format

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency formats v as whole reais: 1234.56 -> "R$ 1.235".
func Currency(v float64) string {
	return currency(math.Round(v), 0)
}

// CurrencyFull formats v with centavos: 1234.5 -> "R$ 1.234,50".
func CurrencyFull(v float64) string {
	return currency(v, 2)
}

func currency(v float64, decimals int) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	pattern := "%.2f"
	if decimals == 0 {
		pattern = "%.0f"
	}
	return sign + "R$ " + printer.Sprintf(pattern, v)
}

// Integer formats n with pt-BR digit grouping: 12345 -> "12.345".
func Integer(n int) string {
	return printer.Sprintf("%d", n)
}

// Percent formats v with one decimal: 12.345 -> "12.3%".
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Area formats square meters; zero renders as "-".
func Area(v float64) string {
	if v == 0 {
		return "-"
	}
	return printer.Sprintf("%.2f", v) + " m²"
}

// Abbreviate shortens large amounts for chart labels.
func Abbreviate(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("R$ %.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("R$ %.0fK", v/1_000)
	}
	return Currency(v)
}

// MonthYear renders a trend bucket label: (3, 2024) -> "mar/24".
func MonthYear(month, year int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%02d/%02d", month, year%100)
	}
	return fmt.Sprintf("%s/%02d", monthAbbr[month-1], year%100)
}

var monthAbbr = [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// Fold lowercases s and strips diacritics, so "Érica" matches "erica".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Contains reports whether s contains q, ignoring case and accents.
func Contains(s, q string) bool {
	return strings.Contains(Fold(s), Fold(q))
}
