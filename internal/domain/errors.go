package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is usually wrapped by a *ValidationError carrying per-field detail.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTaskStatus is returned when a task status is not one of the declared values.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrInvalidPostStatus is returned when a post status is not one of the declared values.
	ErrInvalidPostStatus = errors.New("invalid post status")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError collects field-keyed validation messages.
// The zero value is not usable; create one with NewValidationError or
// NewFieldErrors.
type ValidationError struct {
	Fields map[string][]string
	Err    error

	order []string
}

// NewValidationError creates a ValidationError with a single field message
// wrapping the given cause. A nil cause defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	v := NewFieldErrors()
	v.Add(field, message)
	if err != nil {
		v.Err = err
	}
	return v
}

// NewFieldErrors creates an empty ValidationError ready to collect messages.
func NewFieldErrors() *ValidationError {
	return &ValidationError{
		Fields: make(map[string][]string),
		Err:    ErrValidation,
	}
}

// Add appends a message for the given field.
func (e *ValidationError) Add(field, message string) {
	if _, seen := e.Fields[field]; !seen {
		e.order = append(e.order, field)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Messages returns every message, grouped by field in the order the fields
// were first added. Fields set directly on the map come last, sorted.
func (e *ValidationError) Messages() []string {
	var out []string
	for _, name := range e.fieldNames() {
		out = append(out, e.Fields[name]...)
	}
	return out
}

func (e *ValidationError) fieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	seen := make(map[string]bool, len(e.Fields))
	for _, name := range e.order {
		if _, ok := e.Fields[name]; ok && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}

	var rest []string
	for name := range e.Fields {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// Merge adds the messages of other for every field e does not already
// carry, keeping other's field order.
func (e *ValidationError) Merge(other *ValidationError) {
	for _, name := range other.fieldNames() {
		if _, seen := e.Fields[name]; seen {
			continue
		}
		for _, msg := range other.Fields[name] {
			e.Add(name, msg)
		}
	}
}

// HasErrors reports whether any field message was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns e when it holds messages and nil otherwise, so callers can
// write `return v.OrNil()` at the end of a Validate method.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

// Error implements the error interface. Fields are listed in sorted order
// so messages are stable.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], "; ")))
	}
	return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, ", "))
}

// Unwrap returns the wrapped cause to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is makes every ValidationError match ErrValidation, whatever its cause.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
