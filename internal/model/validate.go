package model

import (
	"errors"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator returns a validator that reports fields by their yaml names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("utf8", func(fl validator.FieldLevel) bool {
		return utf8.ValidString(fl.Field().String())
	})
	return v
}

// MissingFields returns the names of required fields that are empty,
// in declaration order. Returns nil for a complete contact.
// Values are not checked for format; whitespace counts as a value.
func (c Contact) MissingFields() []string {
	return c.failedFields("required")
}

// InvalidFields returns the names of non-empty fields that are not valid
// UTF-8, in declaration order.
func (c Contact) InvalidFields() []string {
	return c.failedFields("utf8")
}

// IsComplete reports whether every field of c is non-empty.
func (c Contact) IsComplete() bool {
	return len(c.MissingFields()) == 0
}

// IsValid reports whether every field of c is non-empty valid UTF-8.
func (c Contact) IsValid() bool {
	return validate.Struct(c) == nil
}

// failedFields returns the fields that failed the validation rule tag.
func (c Contact) failedFields(tag string) []string {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	var fields []string
	for _, fe := range verrs {
		if fe.Tag() == tag {
			fields = append(fields, fe.Field())
		}
	}
	return fields
}
