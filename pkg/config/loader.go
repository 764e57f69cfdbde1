package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/colorphrase/pkg/errors"
	"github.com/arthur-debert/colorphrase/pkg/logging"
	"github.com/arthur-debert/colorphrase/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "COLORPHRASE_"

// Load builds the effective configuration. path is an explicit config file;
// when empty the XDG location is used and a missing file is not an error.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. User file
	explicit := path != ""
	if !explicit {
		path = paths.New().ConfigFile()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
				WithDetail(errors.DetailPath, path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read config file %s", path).
			WithDetail(errors.DetailPath, path)
	}

	// 3. Env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToColorHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 5. Validate
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Trace().Strs("palettes", cfg.PaletteNames()).Str("palette", cfg.Palette).Msg("Configuration loaded")
	return &cfg, nil
}

// envKey maps COLORPHRASE_PALETTES_ANGLE_INNER to palettes.angle.inner.
// Palette field names have no underscores, so everything between PALETTES_
// and the last underscore is the palette name: COLORPHRASE_PALETTES_MY_THEME_INNER
// sets palettes.my_theme.inner.
// Variables that locate files rather than configure formatting are skipped.
func envKey(s string) string {
	switch s {
	case paths.EnvConfigFile, paths.EnvConfigDir, paths.EnvStateDir:
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "palettes_"); ok {
		if i := strings.LastIndex(rest, "_"); i > 0 {
			return "palettes." + rest[:i] + "." + rest[i+1:]
		}
	}
	return strings.ReplaceAll(key, "_", ".")
}
