// Package apperr defines the application error taxonomy.
//
// Every handler-level failure is translated into one of these codes and a
// client-safe message before it reaches a response body; driver error text
// and stack traces never leave the process.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an application error.
type Code string

const (
	CodeInvalidInput       Code = "INVALID_INPUT"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeConflict           Code = "CONFLICT"
	CodeServerError        Code = "SERVER_ERROR"
)

// Error carries a code, a client-safe message, and the wrapped cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// InvalidInput marks a request that failed validation.
func InvalidInput(message string) *Error {
	return &Error{Code: CodeInvalidInput, Message: message}
}

// Unauthenticated marks a failed bearer-token check. The message is fixed so
// no cause (missing token, bad token, deleted admin) can be told apart.
func Unauthenticated() *Error {
	return &Error{Code: CodeUnauthenticated, Message: "Please authenticate"}
}

// InvalidCredentials marks a failed login. The message is identical for
// unknown usernames and wrong passwords.
func InvalidCredentials() *Error {
	return &Error{Code: CodeInvalidCredentials, Message: "Invalid username or password"}
}

// Conflict marks a uniqueness violation.
func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

// Server wraps an unexpected failure behind a generic message.
func Server(err error) *Error {
	return &Error{Code: CodeServerError, Message: "Something went wrong", Err: err}
}

// HTTPStatus maps an error to its response status code.
// Unrecognised errors are treated as server errors.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Code {
	case CodeInvalidInput, CodeConflict:
		return http.StatusBadRequest
	case CodeUnauthenticated, CodeInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to place in a response body.
func ClientMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "Something went wrong"
	}
	return e.Message
}
