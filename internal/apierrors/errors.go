// Package apierrors provides the error type shared by every layer of the
// BHExpress client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingToken is returned when no API token could be resolved.
	ErrMissingToken = errors.New("API token is required")

	// ErrConfig is returned when configuration sources cannot be read.
	ErrConfig = errors.New("invalid configuration")

	// ErrConnection is returned when the server could not be reached.
	ErrConnection = errors.New("connection error")

	// ErrTimeout is returned when the request exceeded its deadline.
	ErrTimeout = errors.New("timeout error")

	// ErrRequest is returned for any other transport-level failure.
	ErrRequest = errors.New("request error")

	// ErrHTTP is returned when the API answered with a status other than 200.
	ErrHTTP = errors.New("HTTP error")
)

// Kind classifies an Error.
type Kind int

const (
	KindUnknown Kind = iota
	KindMissingToken
	KindConfig
	KindConnection
	KindTimeout
	KindRequest
	KindHTTP
)

func (k Kind) sentinel() error {
	switch k {
	case KindMissingToken:
		return ErrMissingToken
	case KindConfig:
		return ErrConfig
	case KindConnection:
		return ErrConnection
	case KindTimeout:
		return ErrTimeout
	case KindRequest:
		return ErrRequest
	case KindHTTP:
		return ErrHTTP
	}
	return nil
}

// Error is the single error type returned by the client.
type Error struct {
	Message string

	// Code is an optional error code. Zero means no code.
	Code int

	// Params holds optional additional error details.
	Params map[string]any

	// StatusCode and Body are set for HTTP errors.
	StatusCode int
	Body       []byte

	// Cause is the underlying transport or configuration error, if any.
	Cause error

	Kind Kind
}

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error of the given kind around cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("[BHExpress] Error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[BHExpress] %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// As extracts an *Error from err.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
