package httpclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies dispatch errors. There is deliberately no
// status-code classification: a non-2xx response is data, not an error.
type ErrorCode int

const (
	// ErrCodeEncode indicates the request body could not be serialized.
	ErrCodeEncode ErrorCode = iota
	// ErrCodeDecode indicates the response body could not be deserialized.
	ErrCodeDecode
	// ErrCodeTransport indicates the transport failed to complete the call
	// (connection refused, DNS, timeout without cancellation, etc).
	ErrCodeTransport
	// ErrCodeCanceled indicates the caller's context was canceled while the
	// call was in flight.
	ErrCodeCanceled
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeEncode:
		return "encode"
	case ErrCodeDecode:
		return "decode"
	case ErrCodeTransport:
		return "transport"
	case ErrCodeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Error is a structured dispatch error. It wraps the underlying failure so
// errors.Is and errors.As reach the original cause; in particular a
// canceled send satisfies errors.Is(err, context.Canceled).
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewEncodeError wraps a body serialization failure.
func NewEncodeError(err error) *Error {
	return &Error{Code: ErrCodeEncode, Message: err.Error(), Err: err}
}

// NewDecodeError wraps a response deserialization failure.
func NewDecodeError(err error) *Error {
	return &Error{Code: ErrCodeDecode, Message: err.Error(), Err: err}
}

// NewTransportError wraps a transport-level failure.
func NewTransportError(err error) *Error {
	return &Error{Code: ErrCodeTransport, Message: err.Error(), Err: err}
}

// NewCanceledError wraps a context cancellation surfaced mid-call.
func NewCanceledError(err error) *Error {
	return &Error{Code: ErrCodeCanceled, Message: err.Error(), Err: err}
}

// IsEncode checks if an error is a body serialization error.
func IsEncode(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeEncode
}

// IsDecode checks if an error is a response deserialization error.
func IsDecode(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDecode
}

// IsTransport checks if an error is a transport-level error.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTransport
}

// IsCanceled checks if an error is a cancellation.
func IsCanceled(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeCanceled
}
