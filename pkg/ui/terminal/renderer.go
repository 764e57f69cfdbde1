// Package terminal renders colorphrase results with ANSI colors
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/colorphrase/pkg/colorphrase"
	"github.com/arthur-debert/colorphrase/pkg/ui/display"
	"github.com/arthur-debert/colorphrase/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Renderer writes styled output through a lipgloss renderer bound to the
// output, so the color profile matches the destination.
type Renderer struct {
	output io.Writer
	lg     *lipgloss.Renderer
}

// New creates a terminal renderer for w
func New(w io.Writer) *Renderer {
	return NewWithRenderer(w, lipgloss.NewRenderer(w))
}

// NewWithRenderer creates a terminal renderer using lg for styling.
func NewWithRenderer(w io.Writer, lg *lipgloss.Renderer) *Renderer {
	return &Renderer{output: w, lg: lg}
}

// Styled returns text with every run colored by its range and styled by
// its marks. Marks without a "mark.<name>" style are ignored. The alpha
// channel of colors is not representable and is dropped.
func (r *Renderer) Styled(text colorphrase.StyledText) string {
	var sb strings.Builder
	for _, run := range text.Runs() {
		style := r.lg.NewStyle()
		if run.Colored {
			style = style.Foreground(lipgloss.Color(run.Color.Hex()))
		}
		for _, name := range run.Marks {
			if mark, ok := styles.Mark(name); ok {
				style = style.Inherit(mark)
			}
		}
		sb.WriteString(style.Render(run.Text))
	}
	return sb.String()
}

// style returns a registry style bound to this renderer
func (r *Renderer) style(name string) lipgloss.Style {
	return r.lg.NewStyle().Inherit(styles.GetStyle(name))
}

// RenderResult renders a display result with terminal styling
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
	_, err := fmt.Fprintln(r.output, r.Styled(result.Styled))
	return err
}

func (r *Renderer) renderTokens(result display.TokensResult) error {
	data := pterm.TableData{{"KIND", "START", "SOURCE", "OUTPUT", "TEXT"}}
	for _, seg := range result.Segments {
		data = append(data, []string{
			seg.Kind.String(),
			strconv.Itoa(seg.Start),
			strconv.Itoa(seg.SourceLen),
			strconv.Itoa(seg.OutputLen),
			strconv.Quote(seg.Text),
		})
	}
	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.Bold)).
		WithData(data).
		WithWriter(r.output).
		Render()
}

func (r *Renderer) renderCheck(result display.CheckResult) error {
	if result.OK {
		_, err := fmt.Fprintln(r.output, r.style("Success").Render("✓ ")+result.Pattern)
		return err
	}

	if _, err := fmt.Fprintln(r.output, r.style("Error").Render("✗ ")+result.Pattern); err != nil {
		return err
	}
	return r.renderPosition(result.Pattern, result.Offset, string(result.Code), result.Message)
}

// renderPosition writes the caret line under an already printed pattern
// indented by two cells, followed by the code and message.
func (r *Renderer) renderPosition(pattern string, offset *int, code, message string) error {
	detail := r.style("Muted").Render(code+": ") + message
	if offset == nil {
		_, err := fmt.Fprintln(r.output, "  "+detail)
		return err
	}
	caret := r.style("Caret").Render(display.Caret(pattern, *offset))
	_, err := fmt.Fprintln(r.output, "  "+caret+" "+detail)
	return err
}

// RenderError renders an error with the pattern and a caret at the
// problem when the error records a position
func (r *Renderer) RenderError(err error) error {
	report := display.NewErrorReport(err)

	if report.Pattern == "" {
		_, werr := fmt.Fprintf(r.output, "%s %s\n", r.style("Error").Render("Error:"), report.Message)
		return werr
	}

	if _, werr := fmt.Fprintf(r.output, "%s %s\n", r.style("Error").Render("Error in pattern:"),
		r.style("Code").Render(report.Pattern)); werr != nil {
		return werr
	}
	// align the caret with the pattern printed after "Error in pattern: "
	if report.Offset != nil {
		pad := strings.Repeat(" ", len("Error in pattern: "))
		caret := r.style("Caret").Render(display.Caret(report.Pattern, *report.Offset))
		if _, werr := fmt.Fprintln(r.output, pad+caret); werr != nil {
			return werr
		}
	}
	_, werr := fmt.Fprintf(r.output, "%s %s\n", r.style("Muted").Render(string(report.Code)+":"), report.Message)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.style("Info").Render(msg))
	return err
}
