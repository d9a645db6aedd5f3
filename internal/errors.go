package internal

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeStorage    ErrorType = "STORAGE_ERROR"
	ErrorTypeExternal   ErrorType = "EXTERNAL_ERROR"
	ErrorTypeInternal   ErrorType = "INTERNAL_ERROR"
)

// AppError is the one error shape that crosses the service/handler
// boundary. Handlers map it to a status code and a {"detail": ...} body;
// Cause never reaches the wire.
type AppError struct {
	Type       ErrorType `json:"type"`
	Detail     string    `json:"detail"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Cause)
	}
	return e.Detail
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	return &AppError{
		Type:       e.Type,
		Detail:     e.Detail,
		StatusCode: e.StatusCode,
		Cause:      cause,
	}
}

func NewValidationError(detail string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Detail:     detail,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(detail string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Detail:     detail,
		StatusCode: http.StatusNotFound,
	}
}

// NewStorageError wraps a persistence failure. Not retried automatically;
// the handler surfaces it as a 500.
func NewStorageError(detail string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeStorage,
		Detail:     detail,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func NewInternalError(detail string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Detail:     detail,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var ErrExpenseNotFound = NewNotFoundError("expense not found")

func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
