package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/nohost/core/handler"
)

// HTTPError is an error with an HTTP status.
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the cause.
func (e HTTPError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status code for the error.
func (e HTTPError) StatusCode() int { return e.Status }

// WithError returns a copy of the error carrying err as its cause.
func (e HTTPError) WithError(err error) HTTPError {
	e.Err = err
	return e
}

// Predefined errors for the statuses the server produces.
var (
	ErrBadRequest          = newHTTPError(http.StatusBadRequest)
	ErrNotFound            = newHTTPError(http.StatusNotFound)
	ErrMethodNotAllowed    = newHTTPError(http.StatusMethodNotAllowed)
	ErrInternalServerError = newHTTPError(http.StatusInternalServerError)
	ErrServiceUnavailable  = newHTTPError(http.StatusServiceUnavailable)
)

func newHTTPError(status int) HTTPError {
	return HTTPError{Status: status, Message: http.StatusText(status)}
}

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// StatusOf returns the status carried by err, or 500.
func StatusOf(err error) int {
	var sc statusCode
	if errors.As(err, &sc) {
		if s := sc.StatusCode(); s >= 400 && s < 600 {
			return s
		}
	}
	return http.StatusInternalServerError
}

// Error returns a response that fails with err, leaving the rendering to
// the error handler.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}

// ErrorHandler writes err as plain text with the status from StatusOf.
// Internal errors are not echoed to the client.
func ErrorHandler[C handler.Context](ctx C, err error) {
	status := StatusOf(err)
	Render(ctx, StringWithStatus(http.StatusText(status), status))
}
