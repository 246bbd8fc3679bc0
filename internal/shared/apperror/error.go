package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string // Error code (e.g., INVALID_INPUT)
	Reason     string // Stable name of the failure (e.g., SESSION_ALREADY_OPEN)
	Message    string // User-friendly message
	HTTPStatus int    // HTTP status code
	Kind       Kind
	Err        error // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another AppError by code and reason, so a wrapped sentinel
// still satisfies errors.Is against the original sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Reason == t.Reason && e.Message == t.Message
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Kind:       kindForCode(code),
	}
}

// Named creates an AppError carrying a stable machine-readable reason.
func Named(code, reason, message string, httpStatus int) *AppError {
	e := New(code, message, httpStatus)
	e.Reason = reason
	return e
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Kind:       kindForCode(code),
		Err:        err,
	}
}

// Integrity wraps a store failure that has no more specific mapping.
func Integrity(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	e := Wrap(err, CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
	e.Reason = "STORE_FAILURE"
	return e
}

// KindOf reports the kind of err. Errors that are not AppErrors are integrity failures.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindIntegrity
}

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" is required", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" is invalid", http.StatusBadRequest)
}
