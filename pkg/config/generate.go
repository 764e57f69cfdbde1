package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/colorphrase/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Generate renders cfg as TOML.
func Generate(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}

// Write saves content to path, creating parent directories. An existing
// file is left alone and reported as FILE_ACCESS.
func Write(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrFileAccess, "config file %s already exists", path).
			WithDetail(errors.DetailPath, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to create directory for %s", path)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", path)
	}
	return nil
}

// CommentOut comments every assignment in TOML content, keeping comments,
// blank lines and table headers, so the file documents values without
// pinning them.
func CommentOut(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
