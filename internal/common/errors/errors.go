package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors for logging and transport mapping.
type ErrorCode string

const (
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"

	// Storage errors
	ErrCodeEnvironment   ErrorCode = "ENVIRONMENT_ERROR" // storage directory cannot be determined or created
	ErrCodeStorageIO     ErrorCode = "STORAGE_IO_ERROR"  // read/write/copy failed
	ErrCodeEncode        ErrorCode = "ENCODE_ERROR"
	ErrCodeMalformedData ErrorCode = "MALFORMED_DATA" // bytes exist but do not match the schema

	// Precondition errors
	ErrCodeNoDataFile     ErrorCode = "NO_DATA_FILE"     // backup requested before any save
	ErrCodeBackupNotFound ErrorCode = "BACKUP_NOT_FOUND" // restore candidate does not exist
)

// AppError is the error value every operation of this service returns.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether the error is one of the precondition failures
// about a missing file.
func (e *AppError) IsNotFound() bool {
	return e.Code == ErrCodeNoDataFile || e.Code == ErrCodeBackupNotFound
}

// IsMalformed reports whether the error marks undecodable data.
func (e *AppError) IsMalformed() bool {
	return e.Code == ErrCodeMalformedData
}

// New creates an application error without an underlying cause.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf creates an application error with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches a cause to a new application error.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf attaches a cause with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// AsAppError extracts an *AppError from anywhere in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err carries the given application error code.
func HasCode(err error, code ErrorCode) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}
