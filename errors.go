package tartan

import (
	"errors"
	"fmt"
)

// Responses are only considered errors when they fall outside the
// expected user flow. By that definition every non-2xx status code is an
// error, as is any body that cannot be decoded. Nothing is retried or
// swallowed; every failure surfaces to the caller immediately.

// UnsuccessfulResponseError reports a status code outside the classified
// set. The body is ignored.
type UnsuccessfulResponseError struct {
	StatusCode int
}

func (e *UnsuccessfulResponseError) Error() string {
	return fmt.Sprintf("unsuccessful response: status %d", e.StatusCode)
}

// InvalidResponseError reports a response body that did not match the
// expected schema. It wraps the underlying decode error, usually a
// *data.DecodeError carrying the field path.
type InvalidResponseError struct {
	Err error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid response: %v", e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

// TransportError reports a connection-level failure from the underlying
// HTTP client, as opposed to a bad status code.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ErrInternal means encoding the outgoing request failed. This should
// not happen with well-formed input and indicates a bug in this library.
var ErrInternal = errors.New("tartan: internal error encoding request")
