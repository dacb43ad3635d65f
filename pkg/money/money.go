package money

import (
	"strconv"
	"strings"
)

// DefaultSymbol is the currency shown next to catalog prices.
const DefaultSymbol = "₽"

// Format renders an integer amount with a space every three digits followed by
// the currency symbol, e.g. Format(12500, "₽") == "12 500 ₽".
func Format(amount int, symbol string) string {
	neg := amount < 0
	mag := uint64(amount)
	if neg {
		// -(amount+1) stays in range for math.MinInt.
		mag = uint64(-(amount + 1)) + 1
	}

	s := strconv.FormatUint(mag, 10)

	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + len(symbol) + 2)
	if neg {
		b.WriteByte('-')
	}

	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(' ')
		b.WriteString(s[i : i+3])
	}

	if symbol != "" {
		b.WriteByte(' ')
		b.WriteString(symbol)
	}
	return b.String()
}
