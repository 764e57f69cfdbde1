package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/colorphrase/pkg/colorphrase"
	"github.com/arthur-debert/colorphrase/pkg/ui"
	"github.com/arthur-debert/colorphrase/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatResult(t *testing.T, pattern, sep string) display.FormatResult {
	t.Helper()
	styled, err := colorphrase.From(pattern).WithSeparator(sep).Format()
	require.NoError(t, err)
	return display.FormatResult{Pattern: pattern, Styled: styled}
}

func patternError(t *testing.T, pattern string) error {
	t.Helper()
	_, err := colorphrase.From(pattern).Format()
	require.Error(t, err)
	return err
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{name: "create terminal renderer", format: ui.FormatTerminal},
		{name: "create text renderer", format: ui.FormatText},
		{name: "create json renderer", format: ui.FormatJSON},
		{name: "create auto renderer with buffer", format: ui.FormatAuto},
		{name: "invalid format", format: ui.Format(999), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(tt.format, buf, ui.Options{})

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
				assert.Contains(t, err.Error(), "unknown format")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, renderer)
			}
		})
	}
}

func TestRendererInterface(t *testing.T) {
	formats := []ui.Format{
		ui.FormatTerminal,
		ui.FormatText,
		ui.FormatJSON,
	}

	for _, format := range formats {
		t.Run(format.String()+" renderer implements interface", func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(format, buf, ui.Options{Ruler: true})
			require.NoError(t, err)

			assert.NoError(t, renderer.RenderMessage("test message"))
			assert.NoError(t, renderer.RenderError(assert.AnError))
			assert.NoError(t, renderer.RenderError(patternError(t, "a{b")))
			assert.NoError(t, renderer.RenderResult(formatResult(t, "x{y}", "{}")))
			assert.NoError(t, renderer.RenderResult(display.NewCheckResult("a{b", patternError(t, "a{b"))))
			assert.NoError(t, renderer.RenderResult(map[string]string{"test": "data"}))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestTextRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf, ui.Options{Ruler: true})
	require.NoError(t, err)

	t.Run("render formatted text with ruler", func(t *testing.T) {
		buf.Reset()
		err := renderer.RenderResult(formatResult(t, "I'm<Chinese>,I love <China>", "<>"))
		assert.NoError(t, err)
		assert.Equal(t, "I'mChinese,I love China\n   ^^^^^^^        ^^^^^\n", buf.String())
	})

	t.Run("ruler is omitted without highlights", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(formatResult(t, "plain", "{}")))
		assert.Equal(t, "plain\n", buf.String())
	})

	t.Run("render pattern error", func(t *testing.T) {
		buf.Reset()
		err := renderer.RenderError(patternError(t, "a{b"))
		assert.NoError(t, err)
		assert.Equal(t,
			"Error in pattern: a{b\n"+
				"                   ^\n"+
				"MALFORMED_PATTERN: the separators don't match in the pattern\n",
			buf.String())
	})

	t.Run("render check results", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(display.NewCheckResult("a{b}", nil)))
		require.NoError(t, renderer.RenderResult(display.NewCheckResult("a{b", patternError(t, "a{b"))))
		assert.Equal(t,
			"ok: a{b}\n"+
				"error: a{b\n"+
				"        ^ MALFORMED_PATTERN: the separators don't match in the pattern\n",
			buf.String())
	})

	t.Run("render tokens", func(t *testing.T) {
		buf.Reset()
		segments, err := colorphrase.From("a{{b}} {c}").Segments()
		require.NoError(t, err)
		require.NoError(t, renderer.RenderResult(&display.TokensResult{Pattern: "a{{b}} {c}", Segments: segments}))
		assert.Equal(t,
			"plain        0    1    1  \"a\"\n"+
				"literal      1    2    1  \"{\"\n"+
				"plain        3    4    4  \"b}} \"\n"+
				"bracketed    7    3    1  \"c\"\n",
			buf.String())
	})

	t.Run("render plain error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))
		assert.Equal(t, "Error: assert.AnError general error for testing\n", buf.String())
	})
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf, ui.Options{})
	require.NoError(t, err)

	t.Run("render message", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderMessage("hello world"))

		var result map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "hello world", result["message"])
	})

	t.Run("render pattern error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(patternError(t, "a{b")))
		assert.JSONEq(t, `{
			"code": "MALFORMED_PATTERN",
			"error": "the separators don't match in the pattern",
			"pattern": "a{b",
			"offset": 1
		}`, buf.String())
	})

	t.Run("render error at offset zero", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(patternError(t, "{}")))

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "EMPTY_BRACKETED_CONTENT", result["code"])
		assert.Equal(t, float64(0), result["offset"])
	})

	t.Run("render foreign error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))
		assert.JSONEq(t, `{"code": "UNKNOWN", "error": "assert.AnError general error for testing"}`, buf.String())
	})

	t.Run("render formatted text", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(formatResult(t, "x{y}", "{}")))
		assert.JSONEq(t, `{
			"pattern": "x{y}",
			"styled": {
				"text": "xy",
				"ranges": [
					{"start": 0, "end": 1, "color": "0xFF666666", "kind": "outer"},
					{"start": 1, "end": 2, "color": "0xFFE6454A", "kind": "inner"}
				]
			}
		}`, buf.String())
	})
}
