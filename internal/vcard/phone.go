// Package vcard turns freeform "name line, phone line" text into vCard 3.0 records.
package vcard

import "strings"

// NormalizePhone maps a raw phone string to the canonical +<digits> form,
// e.g. "8 925 198-90-91" -> "+79251989091". An empty result means the value
// could not be normalized.
//
// This is a best-effort heuristic around Russian 11-digit numbering, not an
// E.164 validator:
//   - a leading '+' is kept and everything else is stripped to digits;
//   - 11 digits starting with '8' -> trunk prefix replaced with +7;
//   - 11 digits starting with '7' -> '+' prepended;
//   - any other non-empty digit string -> '+' prepended as-is.
func NormalizePhone(raw string) string {
	s := strings.TrimSpace(raw)
	hasPlus := strings.HasPrefix(s, "+")

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	digits := b.String()

	switch {
	case hasPlus:
		// Note: "+" with no digits comes back as "+"; Parse rejects it
		// because a contact phone needs at least one digit.
		return "+" + digits
	case len(digits) == 11 && digits[0] == '8':
		return "+7" + digits[1:]
	case len(digits) == 11 && digits[0] == '7':
		return "+" + digits
	case digits != "":
		return "+" + digits
	}
	return ""
}
