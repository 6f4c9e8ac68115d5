package vcard

import "strings"

// Serialize renders contacts as concatenated vCard 3.0 blocks, one FN/TEL
// pair per contact, blocks separated by a single line break. An empty list
// yields an empty string. Name and phone are emitted verbatim: address books
// accept unescaped FN/TEL-only cards, and the phone is already restricted to
// +<digits> by normalization.
func Serialize(contacts []Contact) string {
	blocks := make([]string, 0, len(contacts))
	for _, ct := range contacts {
		blocks = append(blocks, strings.Join([]string{
			"BEGIN:VCARD",
			"VERSION:3.0",
			"FN:" + ct.Name,
			"TEL;TYPE=CELL:" + ct.Phone,
			"END:VCARD",
		}, "\n"))
	}
	return strings.Join(blocks, "\n")
}
