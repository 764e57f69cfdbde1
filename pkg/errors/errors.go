// Package errors defines the coded error type used across colorphrase.
//
// Every failure the library can raise carries a stable ErrorCode so callers
// (and tests) can branch on the kind of failure without matching messages.
// Pattern errors additionally record the rune offset where the problem was
// detected under the "offset" detail key.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Phrase construction and formatting
	ErrInvalidArgument       ErrorCode = "INVALID_ARGUMENT"
	ErrMalformedPattern      ErrorCode = "MALFORMED_PATTERN"
	ErrUnterminatedBracket   ErrorCode = "UNTERMINATED_BRACKET"
	ErrEmptyBracketedContent ErrorCode = "EMPTY_BRACKETED_CONTENT"

	// Configuration
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// Detail keys shared by the library and the CLI.
const (
	DetailOffset    = "offset"
	DetailPattern   = "pattern"
	DetailSeparator = "separator"
	DetailPath      = "path"
)

var codeSummaries = map[ErrorCode]string{
	ErrInvalidArgument:       "invalid argument",
	ErrMalformedPattern:      "unbalanced delimiters",
	ErrUnterminatedBracket:   "bracket opened but never closed",
	ErrEmptyBracketedContent: "nothing between delimiters",
	ErrConfigLoad:            "configuration could not be loaded",
	ErrConfigParse:           "configuration could not be parsed",
	ErrConfigValid:           "configuration is invalid",
	ErrFileAccess:            "file could not be read",
	ErrInternal:              "internal error",
}

// Summary returns a short human description of the code.
func (c ErrorCode) Summary() string {
	if s, ok := codeSummaries[c]; ok {
		return s
	}
	return "unknown error"
}

// IsPatternError reports whether the code describes a problem with the
// pattern text itself rather than with configuration.
func (c ErrorCode) IsPatternError() bool {
	switch c {
	case ErrMalformedPattern, ErrUnterminatedBracket, ErrEmptyBracketedContent:
		return true
	}
	return false
}

// Error is a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps err with a formatted message. A nil err yields nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// AtOffset records the rune offset in the pattern where the error was found.
func (e *Error) AtOffset(offset int) *Error {
	return e.WithDetail(DetailOffset, offset)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an *Error
func GetErrorCode(err error) ErrorCode {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an *Error
func GetErrorDetails(err error) map[string]interface{} {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Details
	}
	return nil
}

// Offset extracts the pattern offset recorded with AtOffset.
func Offset(err error) (int, bool) {
	details := GetErrorDetails(err)
	if details == nil {
		return 0, false
	}
	offset, ok := details[DetailOffset].(int)
	return offset, ok
}

// As is the standard library errors.As, so callers need a single errors import.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Is is the standard library errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
