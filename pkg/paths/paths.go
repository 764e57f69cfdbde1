// Package paths resolves where colorphrase keeps its configuration and state.
// It follows the XDG Base Directory specification and lets each location be
// overridden through environment variables.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigFile points directly at a configuration file
	EnvConfigFile = "COLORPHRASE_CONFIG"

	// EnvConfigDir overrides the XDG config directory for colorphrase
	EnvConfigDir = "COLORPHRASE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for colorphrase
	EnvStateDir = "COLORPHRASE_STATE_DIR"
)

const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "colorphrase"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "colorphrase.log"
)

// Paths provides the locations colorphrase reads from and writes to
type Paths struct {
	configDir string
	stateDir  string
}

// New resolves all directories from the environment.
func New() *Paths {
	p := &Paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// xdg reads its variables once at init, so a later XDG_STATE_HOME is checked by hand
	switch {
	case os.Getenv(EnvStateDir) != "":
		p.stateDir = expandHome(os.Getenv(EnvStateDir))
	case os.Getenv("XDG_STATE_HOME") != "":
		p.stateDir = filepath.Join(os.Getenv("XDG_STATE_HOME"), AppDirName)
	default:
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

// ConfigDir returns the colorphrase configuration directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the colorphrase state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// ConfigFile returns the user configuration file. COLORPHRASE_CONFIG wins
// over the file inside ConfigDir.
func (p *Paths) ConfigFile() string {
	if file := os.Getenv(EnvConfigFile); file != "" {
		return expandHome(file)
	}
	return filepath.Join(p.configDir, ConfigFileName)
}

// LogFilePath returns the path of the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
