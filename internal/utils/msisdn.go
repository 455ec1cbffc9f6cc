package utils

import (
	"strings"
)

// DigitsOnly drops every non-digit rune, including non-ASCII digits such as
// Persian numerals which are first mapped to their ASCII form.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + (r - '۰'))
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + (r - '٠'))
		}
	}
	return b.String()
}

// NormalizeIranianMobile collapses the common spellings of an Iranian mobile
// number (+98912..., 0098912..., 98912..., 912..., 0912...) to 09XXXXXXXXX.
// ok is false when the input is not an Iranian mobile number.
func NormalizeIranianMobile(phone string) (normalized string, ok bool) {
	digits := DigitsOnly(phone)

	switch {
	case strings.HasPrefix(digits, "0098"):
		digits = digits[4:]
	case strings.HasPrefix(digits, "98") && len(digits) == 12:
		digits = digits[2:]
	}
	digits = strings.TrimPrefix(digits, "0")

	if len(digits) != 10 || digits[0] != '9' {
		return "", false
	}
	return "0" + digits, true
}

// NormalizePhone returns the canonical form of an Iranian mobile number and
// falls back to the digits of anything else, so partner data is never
// rejected for its format alone.
func NormalizePhone(phone string) string {
	if normalized, ok := NormalizeIranianMobile(phone); ok {
		return normalized
	}
	return DigitsOnly(phone)
}
