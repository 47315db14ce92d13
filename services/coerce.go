package services

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// ToNumber converts an untyped value coming from the store or from user input
// into a finite float64. nil, empty strings, booleans, unparseable strings and
// NaN/±Inf all yield def. It never panics.
//
// Strings are trimmed and a single decimal comma is accepted ("12,5"), since
// room books are frequently keyed in with German notation.
func ToNumber(v any, def float64) float64 {
	switch t := v.(type) {
	case nil:
		return def
	case bool:
		return def
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return def
		}
		if !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
			s = strings.Replace(s, ",", ".", 1)
		}
		v = s
	case *string:
		if t == nil {
			return def
		}
		return ToNumber(*t, def)
	case *float64:
		if t == nil {
			return def
		}
		v = *t
	}

	n, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return def
	}
	return n
}

// Round rounds x half away from zero to the given number of decimal places.
// The value is taken at its shortest decimal representation first, so
// 10.415 rounds to 10.42 rather than falling victim to its binary expansion.
// NaN and ±Inf are returned unchanged.
func Round(x float64, places int32) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	f, _ := decimal.NewFromFloat(x).Round(places).Float64()
	return f
}
