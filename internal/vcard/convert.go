package vcard

// ConvertToVCard runs the whole pipeline on raw pasted text: parse and
// normalize the pairs, then serialize the survivors. It never fails —
// malformed input surfaces as warnings and an input with no usable pairs
// yields an empty document.
func ConvertToVCard(raw string) (string, []string) {
	contacts, warns := Parse(raw)
	warnings := make([]string, 0, len(warns))
	for _, w := range warns {
		warnings = append(warnings, w.String())
	}
	return Serialize(contacts), warnings
}
