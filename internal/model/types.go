// Package model defines the core data structures for ab.
package model

import (
	"fmt"
	"strings"
)

// Contact is a single address-book entry.
// Contacts have no identity: two contacts with identical fields are
// indistinguishable. Edits replace a contact rather than mutating it.
type Contact struct {
	Name  string `yaml:"name" validate:"required,utf8"`
	Email string `yaml:"email" validate:"required,utf8"`
	Phone string `yaml:"phone" validate:"required,utf8"`
}

// NewContact returns a contact with the given fields.
func NewContact(name, email, phone string) Contact {
	return Contact{Name: name, Email: email, Phone: phone}
}

// String returns the display form "name | email | phone".
func (c Contact) String() string {
	return c.Name + " | " + c.Email + " | " + c.Phone
}

// Field identifies one of the contact fields.
type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
)

// Fields lists all contact fields in display order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone}

// ParseField parses a field name case-insensitively.
func ParseField(s string) (Field, error) {
	switch Field(strings.ToLower(strings.TrimSpace(s))) {
	case FieldName:
		return FieldName, nil
	case FieldEmail:
		return FieldEmail, nil
	case FieldPhone:
		return FieldPhone, nil
	}
	return "", fmt.Errorf("unknown field %q (expected name, email, or phone)", s)
}

// Value returns the value of field f on c.
func (c Contact) Value(f Field) string {
	switch f {
	case FieldEmail:
		return c.Email
	case FieldPhone:
		return c.Phone
	default:
		return c.Name
	}
}

// Title returns the capitalized field name for headers and prompts.
func (f Field) Title() string {
	if f == "" {
		return ""
	}
	return strings.ToUpper(string(f[:1])) + string(f[1:])
}
