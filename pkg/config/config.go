package config

import (
	"sort"

	"github.com/arthur-debert/colorphrase/pkg/colorphrase"
	"github.com/arthur-debert/colorphrase/pkg/errors"
)

// Config is the effective colorphrase configuration.
type Config struct {
	// Palette names the palette used when none is requested explicitly.
	Palette string `koanf:"palette" toml:"palette"`

	// Format is the default output format: auto, term, text or json.
	Format string `koanf:"format" toml:"format"`

	// Ruler turns on the caret line for text output.
	Ruler bool `koanf:"ruler" toml:"ruler"`

	Palettes map[string]Palette `koanf:"palettes" toml:"palettes"`
}

// Palette is a named separator and color pair.
type Palette struct {
	Separator string            `koanf:"separator" toml:"separator"`
	Inner     colorphrase.Color `koanf:"inner" toml:"inner"`
	Outer     colorphrase.Color `koanf:"outer" toml:"outer"`
}

// PaletteNames returns the configured palette names in order.
func (c *Config) PaletteNames() []string {
	names := make([]string, 0, len(c.Palettes))
	for name := range c.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the formatting configuration of the named palette. An
// empty name selects the configured default palette.
func (c *Config) Resolve(name string) (colorphrase.Config, error) {
	if name == "" {
		name = c.Palette
	}
	palette, ok := c.Palettes[name]
	if !ok {
		return colorphrase.Config{}, errors.Newf(errors.ErrConfigValid,
			"unknown palette %q", name).
			WithDetail("palette", name).
			WithDetail("available", c.PaletteNames())
	}
	return palette.Config()
}

// Config converts the palette into a colorphrase.Config.
func (p Palette) Config() (colorphrase.Config, error) {
	sep, err := colorphrase.ParseSeparator(p.Separator)
	if err != nil {
		return colorphrase.Config{}, errors.Wrapf(err, errors.ErrConfigValid,
			"palette separator %q", p.Separator)
	}
	return colorphrase.Config{Separator: sep, Inner: p.Inner, Outer: p.Outer}, nil
}

// validate checks every palette and the default palette reference.
func (c *Config) validate() error {
	for _, name := range c.PaletteNames() {
		if _, err := c.Palettes[name].Config(); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "palette %q", name)
		}
	}
	if _, ok := c.Palettes[c.Palette]; !ok {
		return errors.Newf(errors.ErrConfigValid, "default palette %q is not defined", c.Palette).
			WithDetail("palette", c.Palette)
	}
	return nil
}
