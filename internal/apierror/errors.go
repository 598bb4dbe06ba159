// Package apierror defines errors that carry a client-facing status and message.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an APIError.
type Kind string

const (
	// KindValidation marks a missing required field.
	KindValidation Kind = "validation"
	// KindConflict marks an attempt to create something that already exists.
	KindConflict Kind = "conflict"
	// KindAuthentication marks rejected credentials.
	KindAuthentication Kind = "authentication"
)

// APIError is an error safe to show to the client as is.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// NewErrValidation reports that one or more required fields are absent.
func NewErrValidation(message string) *APIError {
	return &APIError{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

// NewErrAccountExists reports that the email is already registered.
func NewErrAccountExists() *APIError {
	return &APIError{Kind: KindConflict, Status: http.StatusConflict, Message: "User already registered."}
}

// NewErrInvalidCredentials reports that no account matches the supplied email and password.
func NewErrInvalidCredentials() *APIError {
	return &APIError{Kind: KindAuthentication, Status: http.StatusUnauthorized, Message: "Invalid credentials"}
}

// As returns the APIError wrapped in err, if any.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err wraps an APIError of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == kind
}
