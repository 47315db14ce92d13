package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatEUR formats an amount in German notation with two decimals and a
// trailing euro sign, e.g. 1.234.567,89 €.
func FormatEUR(amount float64) string {
	return FormatNumber(amount, 2) + " €"
}

// FormatNumber formats x with the given number of decimals using a period as
// thousands separator and a comma as decimal separator. NaN and ±Inf are
// rendered as "n. v." (nicht verfügbar).
func FormatNumber(x float64, decimals int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "n. v."
	}
	x = Round(x, int32(decimals))

	negative := x < 0
	if negative {
		x = -x
	}

	raw := fmt.Sprintf("%.*f", decimals, x)
	intPart, decPart, _ := strings.Cut(raw, ".")

	result := applyThousandsGrouping(intPart)
	if decimals > 0 {
		result += "," + decPart
	}
	if negative && strings.Trim(raw, "0.") != "" {
		result = "-" + result
	}
	return result
}

// applyThousandsGrouping inserts a period between every group of three
// digits, counting from the right.
func applyThousandsGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// formatQty renders whole numbers without decimals and everything else with
// two, in German notation.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return FormatNumber(qty, 0)
	}
	return FormatNumber(qty, 2)
}
