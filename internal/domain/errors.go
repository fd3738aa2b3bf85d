package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed or incomplete input row. Row is the
// 1-based position within a batch, 0 when the input is not row-scoped.
type ValidationError struct {
	Field  string
	Row    int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: invalid %s: %s", e.Row, e.Field, e.Reason)
	}

	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError without a row locator.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NewRowValidationError builds a ValidationError for one row of a batch.
func NewRowValidationError(row int, field, reason string) *ValidationError {
	return &ValidationError{Row: row, Field: field, Reason: reason}
}

// NotFoundError reports a reference to a missing entity. Never defaulted
// silently.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// NewNotFoundError builds a NotFoundError for an entity/id pair.
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
