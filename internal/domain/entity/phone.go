package entity

import (
	"strings"

	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
)

// NormalizePhone converts a subscriber number to the canonical
// 12-digit international form. Accepted shapes after stripping
// non-digits:
//
//	9 digits starting with "7"   -> "254" + digits
//	10 digits starting with "07" -> "254" + digits[1:]
//	12 digits starting with "254" -> unchanged
//
// Anything else is ErrInvalidPhone.
func NormalizePhone(phone string) (string, error) {
	digits := stripNonDigits(phone)

	switch {
	case len(digits) == 9 && strings.HasPrefix(digits, "7"):
		return "254" + digits, nil
	case len(digits) == 10 && strings.HasPrefix(digits, "07"):
		return "254" + digits[1:], nil
	case len(digits) == 12 && strings.HasPrefix(digits, "254"):
		return digits, nil
	default:
		return "", errs.ErrInvalidPhone
	}
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
