package apperrors

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeConflict   ErrorCode = "CONFLICT"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeStore      ErrorCode = "STORE_ERROR"
)

// AppError carries a classification code, a client-facing message and an
// optional wrapped cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

func Store(message string, err error) *AppError {
	return &AppError{Code: ErrCodeStore, Message: message, Err: err}
}

// Get extracts an *AppError from err, or nil if err is not one.
func Get(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
