package display

import (
	"strings"

	"github.com/arthur-debert/colorphrase/pkg/colorphrase"
	"github.com/rivo/uniseg"
)

// Caret returns a line with "^" under the rune at offset of text. Wide
// runes are measured by their terminal cell width.
func Caret(text string, offset int) string {
	runes := []rune(text)
	if offset > len(runes) {
		offset = len(runes)
	}
	if offset < 0 {
		offset = 0
	}
	return strings.Repeat(" ", uniseg.StringWidth(string(runes[:offset]))) + "^"
}

// Ruler returns a line with "^" under every rune an inner range covers.
// It returns "" when nothing is highlighted.
func Ruler(text colorphrase.StyledText) string {
	var sb strings.Builder
	marked := false
	for _, run := range text.Runs() {
		width := uniseg.StringWidth(run.Text)
		if run.Colored && run.Kind == colorphrase.RangeInner {
			sb.WriteString(strings.Repeat("^", width))
			marked = true
			continue
		}
		sb.WriteString(strings.Repeat(" ", width))
	}
	if !marked {
		return ""
	}
	return strings.TrimRight(sb.String(), " ")
}
