package common

import (
	"errors"
	"net/http"
)

// AppError carries a stable machine-readable code and the HTTP status the
// error should surface as. Handlers render it through JSONError so every
// failure shares one payload shape.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Details    any
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError constructs an AppError.
func NewAppError(code, message string, status int, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

// BadRequest is a 400 with the given code.
func BadRequest(code, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: http.StatusBadRequest}
}

// NotFound is a 404 with the given code.
func NotFound(code, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: http.StatusNotFound}
}

// Upstream wraps a dependency failure as a 502.
func Upstream(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: http.StatusBadGateway, Err: err}
}

// AsAppError extracts the AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var target *AppError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
