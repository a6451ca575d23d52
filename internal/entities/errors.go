// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrContactNotFound is returned when a contact does not exist.
	ErrContactNotFound = errors.New("contact not found")
	// ErrDealNotFound is returned when a deal does not exist.
	ErrDealNotFound = errors.New("deal not found")
	// ErrTaskNotFound is returned when a task does not exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrStageNotFound signals a reference to an unknown pipeline stage.
	ErrStageNotFound = errors.New("stage not found")
)

// FieldErrors collects per-field form validation failures. Submission is
// refused while any field is present; each message is shown next to the
// offending field.
type FieldErrors map[string]string

// Error renders field:message pairs in field order.
func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for k := range f {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, k := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", k, f[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsFieldErrors unwraps err into FieldErrors if it carries one.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
