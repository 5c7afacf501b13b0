package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoEventSelected = errors.New("no event selected")
	ErrNoContactCard   = errors.New("no contact card saved")
	ErrEventNotFound   = errors.New("event not found")
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotSchedulable marks agenda rows like breaks and lunch that
	// cannot be added to a personal schedule.
	ErrNotSchedulable = errors.New("session cannot be scheduled")
)

// FieldError marks a fetched record that failed the boundary
// field-presence check.
type FieldError struct {
	Record string
	Field  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s record is missing required field %q", e.Record, e.Field)
}

// ErrMissingField builds a FieldError for a record/field pair.
func ErrMissingField(record, field string) error {
	return &FieldError{Record: record, Field: field}
}
