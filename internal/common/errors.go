// Package common defines shared constants and sentinel errors used across
// the validation, backend and session layers of loginflow. Callers should use
// errors.Is to match these values and errors.As to extract an *AuthError.
package common

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable authentication failure category.
type Kind string

const (
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
	KindNotFound           Kind = "NOT_FOUND"
	KindNetworkError       Kind = "NETWORK_ERROR"
	KindAlreadyExists      Kind = "ALREADY_EXISTS"
)

// Codes refine a Kind for display purposes.
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeEmailNotFound      = "EMAIL_NOT_FOUND"
	CodeNetworkError       = "NETWORK_ERROR"
	CodeUsernameTaken      = "USERNAME_TAKEN"
	CodeEmailTaken         = "EMAIL_TAKEN"
)

var (
	// Kind sentinels, matched by (*AuthError).Is.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrNetwork            = errors.New("network error")
	ErrAlreadyExists      = errors.New("already exists")

	// Session flow control.
	ErrLoginInProgress = errors.New("login already in progress")
	ErrLoginAborted    = errors.New("login aborted by logout")
)

// AuthError is the typed failure returned by every authentication operation.
// Message is human readable and safe to show to the user; Code narrows the
// Kind (for example USER_NOT_FOUND vs EMAIL_NOT_FOUND).
type AuthError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

// NewAuthError constructs an AuthError wrapping cause.
func NewAuthError(kind Kind, code, message string, cause error) *AuthError {
	return &AuthError{Kind: kind, Code: code, Message: message, Err: cause}
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind.
func (e *AuthError) Is(target error) bool {
	return kindSentinel(e.Kind) == target
}

func kindSentinel(k Kind) error {
	switch k {
	case KindInvalidCredentials:
		return ErrInvalidCredentials
	case KindNotFound:
		return ErrNotFound
	case KindNetworkError:
		return ErrNetwork
	case KindAlreadyExists:
		return ErrAlreadyExists
	default:
		return nil
	}
}

// KindOf extracts the Kind from err, or "" if err is not an *AuthError.
func KindOf(err error) Kind {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}
