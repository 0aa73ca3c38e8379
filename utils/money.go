package utils

import (
	"strconv"
	"strings"
)

// RupeeSign is the currency glyph printed on shipping badges.
const RupeeSign = "₹"

// FormatINR formats a whole-rupee amount like "₹72" or "₹1,23,456".
// Uses Indian digit grouping: the last three digits, then groups of two.
func FormatINR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)

	var b strings.Builder
	// Pre-allocate: digits + separators + sign + glyph
	b.Grow(len(s) + len(s)/2 + 1 + len(RupeeSign))
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(RupeeSign)

	if len(s) <= 3 {
		b.WriteString(s)
		return b.String()
	}

	head, tail := s[:len(s)-3], s[len(s)-3:]

	// Insert separators from the left of the head in pairs.
	rem := len(head) % 2
	if rem == 0 {
		rem = 2
	}
	b.WriteString(head[:rem])
	for i := rem; i < len(head); i += 2 {
		b.WriteByte(',')
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)

	return b.String()
}
