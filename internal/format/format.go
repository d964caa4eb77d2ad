// Package format renders monetary and percentage values for display.
// Stored values are always plain numbers; formatting happens here and only
// here, at presentation time.
package format

import (
	"strconv"
	"strings"
)

// CurrencySymbol is the fixed display currency (Philippine peso).
const CurrencySymbol = "₱"

// Currency formats a peso amount with thousands separators and two
// decimals, e.g. 1234.5 -> "₱1,234.50".
func Currency(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(CurrencySymbol)
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// Percent formats a percentage with one decimal place, e.g. 72.5 -> "72.5%".
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
