package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidationError rejects malformed input before any collection access.
// Field names the offending input field when known.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// ConflictError signals that a slot is already taken or a booking is in a
// state incompatible with the requested transition. Never retried
// automatically; the message is meant to be shown to the user as-is.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(msg string) error {
	return &ConflictError{Message: msg}
}

// PermissionError signals that the actor lacks the role required for the
// requested operation. Raised before any state mutation.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}

func NewPermissionError(msg string) error {
	return &PermissionError{Message: msg}
}

// CollaboratorUnavailableError wraps a failed read or write against the
// database or cache. Read paths feeding availability degrade instead of
// failing; write paths surface this to the caller for an explicit retry.
type CollaboratorUnavailableError struct {
	Op  string
	Err error
}

func (e *CollaboratorUnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Op, e.Err)
}

func (e *CollaboratorUnavailableError) Unwrap() error {
	return e.Err
}

func NewCollaboratorError(op string, err error) error {
	return &CollaboratorUnavailableError{Op: op, Err: err}
}

// RespondError maps a typed service error onto an HTTP response. Unknown
// errors become a 500 without leaking internals.
func RespondError(c *gin.Context, err error) {
	var (
		vErr *ValidationError
		cErr *ConflictError
		pErr *PermissionError
		uErr *CollaboratorUnavailableError
	)
	switch {
	case errors.As(err, &vErr):
		JSONError(c, http.StatusBadRequest, "Invalid input", vErr.Error())
	case errors.As(err, &cErr):
		JSONError(c, http.StatusConflict, cErr.Message, "")
	case errors.As(err, &pErr):
		JSONError(c, http.StatusForbidden, pErr.Message, "")
	case errors.As(err, &uErr):
		JSONError(c, http.StatusServiceUnavailable, "Service temporarily unavailable", "Please try again")
	default:
		JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
