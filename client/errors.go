package client

import (
	"errors"
	"fmt"
)

// ValidationError is a locally-detected input problem (missing reason,
// illegal transition). It is surfaced inline and never reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// RequestError is a network or HTTP failure from the marketplace backend,
// carrying the server-provided message when one was returned.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend request failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend request failed (%d)", e.StatusCode)
}

// NotFoundError indicates the requested entity does not exist on the backend.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
