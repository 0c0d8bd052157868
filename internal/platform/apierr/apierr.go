package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an error that already knows how it should be rendered to a client.
// Message is what the client sees; Err is the cause and is only logged.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	case e.Code != "":
		return e.Code
	default:
		return fmt.Sprintf("api error (%d)", e.Status)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code, message string, err error) *Error {
	return &Error{Status: status, Code: code, Message: message, Err: err}
}

func BadRequest(code, message string, err error) *Error {
	return New(http.StatusBadRequest, code, message, err)
}

func NotFound(code, message string) *Error {
	return New(http.StatusNotFound, code, message, nil)
}

func Internal(code, message string, err error) *Error {
	return New(http.StatusInternalServerError, code, message, err)
}

func Unavailable(code, message string, err error) *Error {
	return New(http.StatusServiceUnavailable, code, message, err)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) && ae != nil {
		return ae, true
	}
	return nil, false
}
