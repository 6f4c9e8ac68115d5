package vcard

import (
	"fmt"
	"strings"
)

// Contact is one parsed entry: a display name and a canonical +<digits> phone.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// WarningKind classifies why an input pair was skipped.
type WarningKind int

const (
	// WarnDanglingName — a trailing name line had no phone line after it.
	WarnDanglingName WarningKind = iota
	// WarnBadPhone — the phone line for a name could not be normalized.
	WarnBadPhone
)

// Warning reports a skipped input pair. Name is the name line it belongs to,
// Raw is the offending phone text (empty for a dangling name). The struct
// keeps the pieces separate so callers can render them in any language.
type Warning struct {
	Kind WarningKind
	Name string
	Raw  string
}

func (w Warning) String() string {
	if w.Kind == WarnDanglingName {
		return fmt.Sprintf("name line without a phone skipped: '%s'", w.Name)
	}
	return fmt.Sprintf("could not recognize phone for: '%s' (line: '%s')", w.Name, w.Raw)
}

// Parse splits pasted text into ordered (name, phone) contacts.
//
// Lines are trimmed and blank lines dropped, then consumed strictly two at a
// time: name line, then phone line. A trailing name with no phone produces a
// warning and ends parsing. A pair whose phone cannot be normalized produces
// a warning and is dropped; parsing continues with the next pair. Malformed
// input never fails: the result is always a (possibly empty) contact list
// plus a (possibly empty) warning list, both in input order.
func Parse(text string) ([]Contact, []Warning) {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}

	var (
		contacts []Contact
		warnings []Warning
	)
	for i := 0; i < len(lines); i += 2 {
		name := lines[i]
		if i+1 >= len(lines) {
			warnings = append(warnings, Warning{Kind: WarnDanglingName, Name: name})
			break
		}
		raw := lines[i+1]
		phone := NormalizePhone(raw)
		// "+" alone carries no digits and is not a usable phone.
		if phone == "" || phone == "+" {
			warnings = append(warnings, Warning{Kind: WarnBadPhone, Name: name, Raw: raw})
			continue
		}
		contacts = append(contacts, Contact{Name: name, Phone: phone})
	}
	return contacts, warnings
}
