// Package errors attaches machine-readable codes to combikit errors.
//
// The algorithm packages (combo, islands, chain) return plain sentinel
// errors. The pipeline, the file readers and the CLI wrap them in an
// [*Error] whose [Code] tells callers whether the request was malformed,
// too large, or hit an internal fault. The HTTP API turns codes into status
// codes and the CLI into exit codes.
//
//	err := errors.New(errors.ErrCodeInvalidArgument, "size must be positive, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidArgument) {
//	    // reject the request
//	}
//
//	err = errors.Wrap(errors.ErrCodeInvalidFormat, cause, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	// The request or its input document is malformed.
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	ErrCodeInvalidState    Code = "INVALID_STATE"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	// A file or route does not exist.
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// The request is valid but outside what this deployment will compute.
	ErrCodeTooLarge    Code = "TOO_LARGE"
	ErrCodeUnsupported Code = "UNSUPPORTED"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// IsClientError reports whether the code blames the caller's input rather
// than combikit itself.
func (c Code) IsClientError() bool {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidArgument, ErrCodeInvalidState,
		ErrCodeInvalidFormat, ErrCodeNotFound, ErrCodeFileNotFound,
		ErrCodeTooLarge, ErrCodeUnsupported:
		return true
	}
	return false
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error that keeps cause reachable through errors.Is/As.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Error formats as "CODE: message: cause".
func (e *Error) Error() string {
	return string(e.Code) + ": " + e.detail()
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) detail() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return code != "" && GetCode(err) == code
}

// UserMessage is err's text without the code prefix, for printing to users.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.detail()
	}
	return err.Error()
}
