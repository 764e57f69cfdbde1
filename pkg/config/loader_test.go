package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/colorphrase/pkg/colorphrase"
	"github.com/arthur-debert/colorphrase/pkg/config"
	"github.com/arthur-debert/colorphrase/pkg/errors"
	"github.com/arthur-debert/colorphrase/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config location at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, dir)
	t.Setenv(paths.EnvConfigFile, "")
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, paths.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Palette)
	assert.Equal(t, "auto", cfg.Format)
	assert.False(t, cfg.Ruler)
	assert.Equal(t, []string{"angle", "default"}, cfg.PaletteNames())

	resolved, err := cfg.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, colorphrase.DefaultConfig(), resolved)

	angle, err := cfg.Resolve("angle")
	require.NoError(t, err)
	assert.Equal(t, colorphrase.Separator{Left: '<', Right: '>'}, angle.Separator)
}

func TestLoad_UserFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
palette = "square"
ruler = true

[palettes.square]
separator = "[]"
inner = "0xFF00FF00"
outer = 4278190335

[palettes.default]
inner = "#123456"
`)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Ruler)
	assert.Equal(t, []string{"angle", "default", "square"}, cfg.PaletteNames())

	square, err := cfg.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, colorphrase.Config{
		Separator: colorphrase.Separator{Left: '[', Right: ']'},
		Inner:     0xFF00FF00,
		Outer:     0xFF0000FF,
	}, square)

	// partial tables merge over the defaults
	def := cfg.Palettes["default"]
	assert.Equal(t, "{}", def.Separator)
	assert.Equal(t, colorphrase.Color(0xFF123456), def.Inner)
	assert.Equal(t, colorphrase.DefaultOuterColor, def.Outer)
}

func TestLoad_ExplicitPath(t *testing.T) {
	isolate(t)
	other := t.TempDir()
	path := writeConfig(t, other, `palette = "angle"`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "angle", cfg.Palette)

	_, err = config.Load(filepath.Join(other, "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("COLORPHRASE_PALETTE", "angle")
	t.Setenv("COLORPHRASE_PALETTES_ANGLE_INNER", "#00FF00")
	t.Setenv("COLORPHRASE_RULER", "true")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "angle", cfg.Palette)
	assert.True(t, cfg.Ruler)
	assert.Equal(t, colorphrase.Color(0xFF00FF00), cfg.Palettes["angle"].Inner)
}

func TestLoad_EnvPaletteWithUnderscore(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
[palettes.my_theme]
separator = "[]"
inner = "#111111"
outer = "#222222"
`)
	t.Setenv("COLORPHRASE_PALETTES_MY_THEME_INNER", "#00FF00")
	t.Setenv("COLORPHRASE_PALETTES_MY_THEME_SEPARATOR", "<>")

	cfg, err := config.Load("")
	require.NoError(t, err)

	theme, ok := cfg.Palettes["my_theme"]
	require.True(t, ok)
	assert.Equal(t, colorphrase.Color(0xFF00FF00), theme.Inner)
	assert.Equal(t, colorphrase.Color(0xFF222222), theme.Outer)
	assert.Equal(t, "<>", theme.Separator)
	assert.NotContains(t, cfg.Palettes, "my")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode errors.ErrorCode
	}{
		{
			name:     "invalid toml",
			content:  "palette = [",
			wantCode: errors.ErrConfigParse,
		},
		{
			name:     "bad color",
			content:  "[palettes.default]\ninner = \"reddish\"",
			wantCode: errors.ErrConfigParse,
		},
		{
			name:     "bad separator",
			content:  "[palettes.default]\nseparator = \"<<>>\"",
			wantCode: errors.ErrConfigValid,
		},
		{
			name:     "unknown default palette",
			content:  `palette = "nope"`,
			wantCode: errors.ErrConfigValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			writeConfig(t, dir, tt.content)

			_, err := config.Load("")
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err), "got %v", err)
		})
	}
}

func TestResolve_UnknownPalette(t *testing.T) {
	isolate(t)
	cfg, err := config.Load("")
	require.NoError(t, err)

	_, err = cfg.Resolve("missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Equal(t, []string{"angle", "default"}, errors.GetErrorDetails(err)["available"])
}
