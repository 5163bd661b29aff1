package domain

import (
	"fmt"
	"strings"
)

// Validation messages shared by the domain invariants and the request
// validators, so both layers report identical text for the same rule.

// FieldLabel turns a JSON field name into the label used in messages.
func FieldLabel(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

// MsgRequired reports a missing or empty field.
func MsgRequired(field string) string {
	return fmt.Sprintf("The %s field is required.", FieldLabel(field))
}

// MsgMaxLength reports a string longer than max characters.
func MsgMaxLength(field string, max string) string {
	return fmt.Sprintf("The %s field must not be greater than %s characters.", FieldLabel(field), max)
}

// MsgMinLength reports a string shorter than min characters.
func MsgMinLength(field string, min string) string {
	return fmt.Sprintf("The %s field must be at least %s characters.", FieldLabel(field), min)
}

// MsgInvalidChoice reports a value outside an enumeration.
func MsgInvalidChoice(field string) string {
	return fmt.Sprintf("The selected %s is invalid.", FieldLabel(field))
}

// MsgInvalidDate reports an unparseable timestamp.
func MsgInvalidDate(field string) string {
	return fmt.Sprintf("The %s field must be a valid date.", FieldLabel(field))
}

// MsgInvalidEmail reports a malformed email address.
func MsgInvalidEmail(field string) string {
	return fmt.Sprintf("The %s field must be a valid email address.", FieldLabel(field))
}

// MsgTaken reports a value that must be unique but already exists.
func MsgTaken(field string) string {
	return fmt.Sprintf("The %s has already been taken.", FieldLabel(field))
}

// MsgType reports a JSON value of the wrong type.
func MsgType(field, typeName string) string {
	return fmt.Sprintf("The %s field must be %s.", FieldLabel(field), typeName)
}

// MsgInvalid is the fallback for rules without a dedicated message.
func MsgInvalid(field string) string {
	return fmt.Sprintf("The %s field is invalid.", FieldLabel(field))
}
