package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across all layers.
type ErrorCode string

const (
	ErrCodeTransport    ErrorCode = "TRANSPORT"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeDecode       ErrorCode = "DECODE"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeMalformed    ErrorCode = "MALFORMED"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeRemote       ErrorCode = "REMOTE"
	ErrCodeUnsupported  ErrorCode = "UNSUPPORTED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrNoCredential   = NewError(ErrCodeMalformed, "login response carries no credential")
	ErrEmptyContent   = NewError(ErrCodeInvalid, "post content must not be empty")
	ErrEmptyQuery     = NewError(ErrCodeInvalid, "search query must not be empty")
	ErrMissingLogin   = NewError(ErrCodeInvalid, "email and password are required")
	ErrMissingSignup  = NewError(ErrCodeInvalid, "name, email and password are required")
	ErrUnauthorized   = NewError(ErrCodeUnauthorized, "unauthorized")
	ErrNotSupported   = NewError(ErrCodeUnsupported, "operation not supported by the server")
	ErrInvalidPayload = NewError(ErrCodeInvalid, "invalid payload")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
