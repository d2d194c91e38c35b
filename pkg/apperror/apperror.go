package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes surfaced in API envelopes.
const (
	CodeValidation    = "VALIDATION"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeMisconfigured = "MISCONFIGURED"
	CodeUpstream      = "UPSTREAM_ERROR"
	CodeInternal      = "INTERNAL"
)

// AppError carries a stable code and HTTP status alongside the message.
// Details must never contain credentials or raw query text.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]interface{}
	cause      error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause attaches an underlying error for logging. The cause is not
// serialized into API responses.
func (e *AppError) WithCause(err error) *AppError {
	e.cause = err
	return e
}

// WithDetails attaches non-sensitive detail fields for the API envelope.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, HTTPStatus: fiber.StatusBadRequest}
}

func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message, HTTPStatus: fiber.StatusNotFound}
}

func Conflict(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message, HTTPStatus: fiber.StatusConflict}
}

func Misconfigured(message string) *AppError {
	return &AppError{Code: CodeMisconfigured, Message: message, HTTPStatus: fiber.StatusInternalServerError}
}

func Upstream(message string) *AppError {
	return &AppError{Code: CodeUpstream, Message: message, HTTPStatus: fiber.StatusBadGateway}
}

func Internal(message string) *AppError {
	return &AppError{Code: CodeInternal, Message: message, HTTPStatus: fiber.StatusInternalServerError}
}

// As unwraps err into an *AppError if possible.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
