package schema

import (
	"fmt"
	"strings"
	"unicode"
)

// PhoneDigits strips everything but digits.
func PhoneDigits(input string) string {
	var b strings.Builder
	for _, r := range input {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone renders a partially typed number as (555) 123-4567.
// Input longer than ten digits is truncated.
func FormatPhone(input string) string {
	digits := PhoneDigits(input)
	if len(digits) > 10 {
		digits = digits[:10]
	}

	switch {
	case len(digits) == 0:
		return ""
	case len(digits) <= 3:
		return "(" + digits
	case len(digits) <= 6:
		return fmt.Sprintf("(%s) %s", digits[:3], digits[3:])
	default:
		return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
	}
}
