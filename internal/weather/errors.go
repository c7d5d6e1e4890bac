package weather

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies why a weather call failed.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"
	KindUnauthorized ErrorKind = "unauthorized"
	KindUpstream     ErrorKind = "upstream_error"
	KindNetwork      ErrorKind = "network_error"
	KindMalformed    ErrorKind = "malformed_response"
	KindUnknown      ErrorKind = "unknown_error"
)

var (
	errNilFailure = errors.New("failure without cause")
	errNoProvider = errors.New("no weather provider configured")
)

// Error is the typed failure returned by providers.
type Error struct {
	Kind       ErrorKind
	StatusCode int // upstream HTTP status, 0 when no response was received
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return "city not found"
	case KindUnauthorized:
		return "invalid API key; reconfigure credentials or switch to demo mode"
	case KindUpstream:
		return fmt.Sprintf("request failed: %d", e.StatusCode)
	case KindNetwork:
		return fmt.Sprintf("network error: %v", e.Err)
	case KindMalformed:
		return fmt.Sprintf("unknown error: malformed response: %v", e.Err)
	default:
		return fmt.Sprintf("unknown error: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// BoundaryKind is the kind reported to callers. Malformed responses are
// surfaced as unknown errors.
func (e *Error) BoundaryKind() ErrorKind {
	if e.Kind == KindMalformed {
		return KindUnknown
	}
	return e.Kind
}

// HTTPStatus maps the boundary kind onto a status code for the HTTP API.
func (e *Error) HTTPStatus() int {
	switch e.BoundaryKind() {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized, KindUpstream:
		return http.StatusBadGateway
	case KindNetwork:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// StatusError maps a non-200 upstream status onto a typed error.
func StatusError(code int) *Error {
	switch code {
	case http.StatusNotFound:
		return &Error{Kind: KindNotFound, StatusCode: code}
	case http.StatusUnauthorized:
		return &Error{Kind: KindUnauthorized, StatusCode: code}
	default:
		return &Error{Kind: KindUpstream, StatusCode: code}
	}
}

// NetworkError wraps a transport-level failure.
func NetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}

// MalformedError reports a 200 response that is missing required data.
func MalformedError(format string, args ...any) *Error {
	return &Error{Kind: KindMalformed, StatusCode: http.StatusOK, Err: fmt.Errorf(format, args...)}
}

// AsError converts any error into a typed *Error, treating unrecognized
// errors as unknown.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindUnknown, Err: err}
}
