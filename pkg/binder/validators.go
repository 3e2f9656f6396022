package binder

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/mateuszwwwrobel/bookstore/pkg/languages"
)

var (
	dateRE = regexp.MustCompile(`^\d{4}-(0[0-9]|1[0-2])-(0[0-9]|1[0-9]|2[0-9]|3[0-1])$`)
)

// dateValidator ensures the value matches the format YYYY-MM-DD or the empty
// string. The reason the empty string is allowed is that this validator can be
// used on optional fields. If you're using this validator but want the value
// to be required, add a `required` to the validate tag so that the empty
// string is disallowed.
func dateValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return dateRE.MatchString(value)
}

// isbn13Validator ensures the value is exactly 13 characters. The store treats
// the ISBN as an opaque 13-character key, so no checksum validation happens
// here.
func isbn13Validator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return len(value) == 13
}

// languageValidator ensures the value is one of the recognized language codes.
func languageValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return languages.Valid(value)
}
