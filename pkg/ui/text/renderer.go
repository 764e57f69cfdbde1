// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/colorphrase/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
	ruler  bool
}

// New creates a new text renderer. With ruler set, formatted text is
// followed by a line of carets under the highlighted runs.
func New(output io.Writer, ruler bool) *Renderer {
	return &Renderer{output: output, ruler: ruler}
}

// RenderResult renders a display result as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.FormatResult:
		return r.renderFormat(*v)
	case display.FormatResult:
		return r.renderFormat(v)
	case *display.TokensResult:
		return r.renderTokens(*v)
	case display.TokensResult:
		return r.renderTokens(v)
	case *display.CheckResult:
		return r.renderCheck(*v)
	case display.CheckResult:
		return r.renderCheck(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderFormat(result display.FormatResult) error {
	if _, err := fmt.Fprintln(r.output, result.Styled.Text); err != nil {
		return err
	}
	if !r.ruler {
		return nil
	}
	if ruler := display.Ruler(result.Styled); ruler != "" {
		_, err := fmt.Fprintln(r.output, ruler)
		return err
	}
	return nil
}

func (r *Renderer) renderTokens(result display.TokensResult) error {
	for _, seg := range result.Segments {
		if _, err := fmt.Fprintf(r.output, "%-9s %4d %4d %4d  %q\n",
			seg.Kind, seg.Start, seg.SourceLen, seg.OutputLen, seg.Text); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderCheck(result display.CheckResult) error {
	if result.OK {
		_, err := fmt.Fprintf(r.output, "ok: %s\n", result.Pattern)
		return err
	}

	const prefix = "error: "
	if _, err := fmt.Fprintf(r.output, "%s%s\n", prefix, result.Pattern); err != nil {
		return err
	}
	indent := strings.Repeat(" ", len(prefix))
	if result.Offset == nil {
		_, err := fmt.Fprintf(r.output, "%s%s: %s\n", indent, result.Code, result.Message)
		return err
	}
	_, err := fmt.Fprintf(r.output, "%s%s %s: %s\n",
		indent, display.Caret(result.Pattern, *result.Offset), result.Code, result.Message)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	report := display.NewErrorReport(err)

	if report.Pattern == "" {
		_, werr := fmt.Fprintf(r.output, "Error: %s\n", report.Message)
		return werr
	}

	const prefix = "Error in pattern: "
	if _, werr := fmt.Fprintf(r.output, "%s%s\n", prefix, report.Pattern); werr != nil {
		return werr
	}
	if report.Offset != nil {
		pad := strings.Repeat(" ", len(prefix))
		if _, werr := fmt.Fprintln(r.output, pad+display.Caret(report.Pattern, *report.Offset)); werr != nil {
			return werr
		}
	}
	_, werr := fmt.Fprintf(r.output, "%s: %s\n", report.Code, report.Message)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
