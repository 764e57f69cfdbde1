// Package ui renders colorphrase results in different formats.
// It supports terminal (ANSI colored), text (plain) and JSON output.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/colorphrase/pkg/errors"
	"github.com/arthur-debert/colorphrase/pkg/ui/json"
	"github.com/arthur-debert/colorphrase/pkg/ui/terminal"
	"github.com/arthur-debert/colorphrase/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders one of the display result types
	RenderResult(result interface{}) error

	// RenderError renders an error, pointing at the pattern position when
	// the error carries one
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// Options tune renderers. Options a format does not use are ignored.
type Options struct {
	// Ruler adds a caret line under formatted text output.
	Ruler bool
}

// NewRenderer creates a new renderer based on the specified format.
// It detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer, opts Options) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output, opts)
		}
		// buffers and pipes wrapped in writers get plain text
		return NewRenderer(FormatText, output, opts)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output, opts.Ruler), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidArgument, "unknown format: %v", format)
	}
}
