// Package config loads colorphrase settings with koanf.
//
// Settings are layered, later layers overriding earlier ones:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/colorphrase/config.toml or an explicit path
//  3. COLORPHRASE_* environment variables, "_" separating key levels
//
// A palette bundles a separator with inner and outer colors. Resolve turns a
// named palette into a colorphrase.Config.
package config
