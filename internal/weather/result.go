package weather

import "encoding/json"

// Result is the envelope every service operation returns: either a
// payload or an error, never both.
type Result[T any] struct {
	data T
	err  *Error
}

// Success wraps a payload.
func Success[T any](data T) Result[T] {
	return Result[T]{data: data}
}

// Failure wraps an error. A nil err is reported as an unknown failure.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = &Error{Kind: KindUnknown, Err: errNilFailure}
	}
	return Result[T]{err: AsError(err)}
}

func (r Result[T]) OK() bool {
	return r.err == nil
}

// Data returns the payload; the zero value on failure.
func (r Result[T]) Data() T {
	return r.data
}

// Err returns the failure; nil on success.
func (r Result[T]) Err() *Error {
	return r.err
}

// Message is the human-readable failure message, empty on success.
func (r Result[T]) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

type resultJSON[T any] struct {
	Success bool      `json:"success"`
	Data    *T        `json:"data,omitempty"`
	Kind    ErrorKind `json:"kind,omitempty"`
	Error   string    `json:"error,omitempty"`
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.err != nil {
		return json.Marshal(resultJSON[T]{
			Kind:  r.err.BoundaryKind(),
			Error: r.err.Error(),
		})
	}
	return json.Marshal(resultJSON[T]{Success: true, Data: &r.data})
}
