package fetchkit

import (
	"errors"
	"fmt"
)

// ErrorCode classifies client errors by the pipeline stage that failed.
type ErrorCode int

const (
	// ErrCodeBuild indicates the request could not be constructed
	// (invalid method, body encoding failure).
	ErrCodeBuild ErrorCode = iota
	// ErrCodeTransport indicates a transport-level failure (connection,
	// protocol, or a non-2xx status as interpreted by the transport).
	ErrCodeTransport
	// ErrCodeInvalidResponse indicates the response was structurally
	// unusable before decoding was attempted.
	ErrCodeInvalidResponse
	// ErrCodeDecode indicates the response body could not be decoded
	// into the requested type.
	ErrCodeDecode
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeBuild:
		return "build"
	case ErrCodeTransport:
		return "transport"
	case ErrCodeInvalidResponse:
		return "invalid_response"
	case ErrCodeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is a structured client error identifying which stage failed.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status code when one was received (0 otherwise).
	StatusCode int
	// Message describes the error.
	Message string
	// Body is the original response body (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetchkit: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetchkit: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewBuildError creates a request construction error.
func NewBuildError(err error) *Error {
	return &Error{
		Code:    ErrCodeBuild,
		Message: err.Error(),
		Err:     err,
	}
}

// NewTransportError creates a connection-level transport error.
func NewTransportError(err error) *Error {
	return &Error{
		Code:    ErrCodeTransport,
		Message: err.Error(),
		Err:     err,
	}
}

// NewStatusError creates a transport error for a non-2xx status code.
func NewStatusError(statusCode int, body []byte) *Error {
	return &Error{
		Code:       ErrCodeTransport,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
}

// NewInvalidResponseError creates an error for a response that is
// unusable before decoding.
func NewInvalidResponseError(err error) *Error {
	return &Error{
		Code:    ErrCodeInvalidResponse,
		Message: err.Error(),
		Err:     err,
	}
}

// NewDecodeError creates a decode error wrapping the underlying cause.
func NewDecodeError(err error) *Error {
	return &Error{
		Code:    ErrCodeDecode,
		Message: err.Error(),
		Err:     err,
	}
}

// IsBuild checks if an error is a request construction error.
func IsBuild(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeBuild
}

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTransport
}

// IsInvalidResponse checks if an error is an invalid-response error.
func IsInvalidResponse(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidResponse
}

// IsDecode checks if an error is a decode error.
func IsDecode(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDecode
}

// StatusCode extracts the HTTP status code from an error, or 0 if the
// error carries none.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
