package model

import "strings"

// lineSeparator separates fields in the import/export format.
// Fields are not escaped, so values containing it cannot round-trip.
const lineSeparator = ","

// ParseLine parses a "name,email,phone" line.
// Returns false unless the line splits into exactly three non-empty fields
// of valid UTF-8.
// A trailing carriage return is ignored.
func ParseLine(line string) (Contact, bool) {
	line = strings.TrimSuffix(line, "\r")
	parts := strings.Split(line, lineSeparator)
	if len(parts) != 3 {
		return Contact{}, false
	}
	c := NewContact(parts[0], parts[1], parts[2])
	if !c.IsValid() {
		return Contact{}, false
	}
	return c, true
}

// FormatLine formats c as a "name,email,phone" line without a newline.
func FormatLine(c Contact) string {
	return c.Name + lineSeparator + c.Email + lineSeparator + c.Phone
}
