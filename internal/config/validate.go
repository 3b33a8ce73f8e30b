package config

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/mplint/internal/errors"
	"github.com/thoreinstein/mplint/internal/logging"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a config version this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidColor indicates an unknown color mode.
	ErrInvalidColor = errors.New("invalid color mode")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, errors.Mark(errors.Newf("unsupported config version: %d", cfg.Version), ErrUnsupportedVersion))
	}

	for _, f := range []struct {
		field, value string
	}{
		{"root", cfg.Root},
		{"plugins_dir", cfg.PluginsDir},
		{"default_plugin_root", cfg.DefaultPluginRoot},
	} {
		if err := validatePath(f.value); err != nil {
			errs = append(errs, &PathError{Field: f.field, Path: f.value, Err: err})
		}
	}

	if cfg.Color != "" && !logging.ValidColorMode(cfg.Color) {
		errs = append(errs, errors.Mark(errors.Newf("invalid color mode: %s", cfg.Color), ErrInvalidColor))
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists. Empty means "use default".
func validatePath(path string) error {
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	if filepath.Clean(path) == "" {
		return ErrInvalidPath
	}

	return nil
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
