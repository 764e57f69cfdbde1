// Package display holds the results renderers know how to draw, shared by
// the terminal, text and JSON renderers.
package display

import (
	"github.com/arthur-debert/colorphrase/pkg/colorphrase"
	"github.com/arthur-debert/colorphrase/pkg/errors"
)

// FormatResult is a pattern and its formatted text.
type FormatResult struct {
	Pattern string                 `json:"pattern"`
	Styled  colorphrase.StyledText `json:"styled"`
}

// TokensResult is the segment sequence of a pattern.
type TokensResult struct {
	Pattern   string                `json:"pattern"`
	Separator string                `json:"separator"`
	Segments  []colorphrase.Segment `json:"segments"`
}

// CheckResult is the outcome of validating one pattern.
type CheckResult struct {
	Pattern string           `json:"pattern"`
	OK      bool             `json:"ok"`
	Code    errors.ErrorCode `json:"code,omitempty"`
	Message string           `json:"message,omitempty"`
	Offset  *int             `json:"offset,omitempty"`
}

// NewCheckResult builds a CheckResult from the error a pattern produced,
// nil meaning the pattern is valid.
func NewCheckResult(pattern string, err error) CheckResult {
	if err == nil {
		return CheckResult{Pattern: pattern, OK: true}
	}
	report := NewErrorReport(err)
	return CheckResult{
		Pattern: pattern,
		Code:    report.Code,
		Message: report.Message,
		Offset:  report.Offset,
	}
}

// ErrorReport is the renderable form of an error.
type ErrorReport struct {
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"error"`
	Pattern string           `json:"pattern,omitempty"`
	Offset  *int             `json:"offset,omitempty"`
}

// NewErrorReport extracts the code, message and pattern position of err.
// Errors that are not *errors.Error report code UNKNOWN.
func NewErrorReport(err error) ErrorReport {
	report := ErrorReport{
		Code:    errors.GetErrorCode(err),
		Message: err.Error(),
	}
	var coded *errors.Error
	if errors.As(err, &coded) {
		report.Message = coded.Message
		if coded.Wrapped != nil {
			report.Message += ": " + coded.Wrapped.Error()
		}
	}
	if pattern, ok := errors.GetErrorDetails(err)[errors.DetailPattern].(string); ok {
		report.Pattern = pattern
	}
	if offset, ok := errors.Offset(err); ok {
		report.Offset = &offset
	}
	return report
}
