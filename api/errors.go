package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every error returned by the client
type ErrorKind int

const (
	// KindNetwork is a transport failure: connect, DNS, TLS, timeout or cancellation.
	KindNetwork ErrorKind = iota + 1
	// KindAPI is a non-2xx response from the service.
	KindAPI
	// KindSerialization is a JSON encode/decode failure or a missing typed field.
	KindSerialization
	// KindInvalidAddress is an address that fails the shape check.
	KindInvalidAddress
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAPI:
		return "api"
	case KindSerialization:
		return "serialization"
	case KindInvalidAddress:
		return "invalid_address"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// defaultErrorMessage is used when an error body has no string "error" field
const defaultErrorMessage = "Unknown error"

// Error is the single error type returned by Client methods.
// Status is only set for KindAPI.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

// ErrInvalidAddress is returned by helpers that require a well-formed address
var ErrInvalidAddress = &Error{Kind: KindInvalidAddress}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("network error: %s", e.Message)
	case KindAPI:
		return fmt.Sprintf("API error (%d): %s", e.Status, e.Message)
	case KindSerialization:
		return fmt.Sprintf("serialization error: %s", e.Message)
	case KindInvalidAddress:
		return "invalid address format"
	default:
		return e.Message
	}
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. This lets
// errors.Is(err, ErrInvalidAddress) match any invalid address error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Status == 0 || t.Status == e.Status)
}

// IsKind reports whether err is, or wraps, an *Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// StatusCode returns the HTTP status of an API error, or 0
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindAPI {
		return apiErr.Status
	}
	return 0
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error(), Err: err}
}

func serializationError(err error) *Error {
	return &Error{Kind: KindSerialization, Message: err.Error(), Err: err}
}

func apiError(status int, message string) *Error {
	return &Error{Kind: KindAPI, Status: status, Message: message}
}
