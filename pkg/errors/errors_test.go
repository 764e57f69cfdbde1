// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, codes and pattern offsets

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/colorphrase/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "malformed_pattern",
			code:    errors.ErrMalformedPattern,
			message: "the separators don't match",
			wantStr: "[MALFORMED_PATTERN] the separators don't match",
		},
		{
			name:    "invalid_argument",
			code:    errors.ErrInvalidArgument,
			message: "separator must not be empty",
			wantStr: "[INVALID_ARGUMENT] separator must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidArgument, "separator %q has %d characters", "abc", 3)
	if want := `separator "abc" has 3 characters`; err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigLoad, "loading config")

		if err.Code != errors.ErrConfigLoad {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrConfigLoad)
		}
		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}
		if want := "[CONFIG_LOAD] loading config: base error"; err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrEmptyBracketedContent, "error 1")
	err2 := errors.New(errors.ErrEmptyBracketedContent, "error 2")
	err3 := errors.New(errors.ErrUnterminatedBracket, "error 3")

	if !err1.Is(err2) {
		t.Error("Is() should return true for same code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrMalformedPattern, "x"), errors.ErrMalformedPattern, true},
		{"different_code", errors.New(errors.ErrMalformedPattern, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"), errors.ErrFileAccess, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrMalformedPattern, false},
		{"nil_error", nil, errors.ErrMalformedPattern, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrUnterminatedBracket, "x")); got != errors.ErrUnterminatedBracket {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want UNKNOWN", got)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v, want UNKNOWN", got)
	}
}

func TestOffset(t *testing.T) {
	t.Run("recorded_offset", func(t *testing.T) {
		err := errors.New(errors.ErrMalformedPattern, "unbalanced").AtOffset(7)
		offset, ok := errors.Offset(err)
		if !ok || offset != 7 {
			t.Errorf("Offset() = %d, %v; want 7, true", offset, ok)
		}
	})

	t.Run("missing_offset", func(t *testing.T) {
		if _, ok := errors.Offset(errors.New(errors.ErrInvalidArgument, "x")); ok {
			t.Error("Offset() should report false when no offset was recorded")
		}
		if _, ok := errors.Offset(stderrors.New("plain")); ok {
			t.Error("Offset() should report false for standard errors")
		}
	})
}

func TestErrorCodeClassification(t *testing.T) {
	for _, code := range []errors.ErrorCode{errors.ErrMalformedPattern, errors.ErrUnterminatedBracket, errors.ErrEmptyBracketedContent} {
		if !code.IsPatternError() {
			t.Errorf("%s should be a pattern error", code)
		}
		if code.Summary() == "unknown error" {
			t.Errorf("%s should have a summary", code)
		}
	}
	if errors.ErrInvalidArgument.IsPatternError() {
		t.Error("INVALID_ARGUMENT is a configuration error")
	}
	if got := errors.ErrorCode("NOPE").Summary(); got != "unknown error" {
		t.Errorf("Summary() = %q", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
		t.Error("Top level should have ErrConfigLoad code")
	}

	var middle *errors.Error
	if stderrors.As(configErr.Unwrap(), &middle) && !errors.IsErrorCode(middle, errors.ErrFileAccess) {
		t.Error("Middle error should have ErrFileAccess code")
	}

	if !stderrors.Is(configErr, rootCause) {
		t.Error("Should find root cause with errors.Is")
	}
}
