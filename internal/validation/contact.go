package validation

import "strings"

// NormalizeContact accepts 09XXXXXXXXX, 9XXXXXXXXX, 639XXXXXXXXX or
// +639XXXXXXXXX, with spaces or dashes, and returns the +639XXXXXXXXX form.
func NormalizeContact(s string) (string, bool) {
	digits := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(s))
	digits = strings.TrimPrefix(digits, "+")

	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "09"):
		digits = digits[1:]
	case len(digits) == 12 && strings.HasPrefix(digits, "639"):
		digits = digits[2:]
	case len(digits) == 10 && strings.HasPrefix(digits, "9"):
	default:
		return "", false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return "+63" + digits, true
}
