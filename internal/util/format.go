package util

import (
	"fmt"
	"math"
	"strings"
)

// FormatDecimal formats v with the given number of decimals using the pt-BR
// separators. Examples: 1234.5, 2 -> "1.234,50"; 0.26, 1 -> "0,3"
// Non-finite values render as "—".
func FormatDecimal(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "—"
	}
	s := fmt.Sprintf("%.*f", decimals, v)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if frac != "" {
		out += "," + frac
	}
	if neg && strings.Trim(out, "0.,") != "" {
		out = "-" + out
	}
	return out
}

// FormatKg formats a plastic mass with two decimals. Example: 10.5 -> "10,50 kg"
func FormatKg(v float64) string {
	return FormatDecimal(v, 2) + " kg"
}

// FormatGrams formats a fungus mass with two decimals. Example: 3.2 -> "3,20 g"
func FormatGrams(v float64) string {
	return FormatDecimal(v, 2) + " g"
}

// FormatRate formats a percentage with one decimal. Example: 45 -> "45,0%"
func FormatRate(v float64) string {
	return FormatDecimal(v, 1) + "%"
}

// FormatCount formats an integer count with thousands separators.
// Example: 120000 -> "120.000"
func FormatCount(n int) string {
	return FormatDecimal(float64(n), 0)
}
