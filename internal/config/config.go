package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/mplint/internal/errors"
	"github.com/thoreinstein/mplint/internal/logging"
	"github.com/thoreinstein/mplint/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "mplint"

// FileName is the config file base name, without extension.
const FileName = ".mplint"

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version" toml:"version"`

	// Root is the marketplace repository root.
	Root string `mapstructure:"root" yaml:"root" toml:"root"`

	// PluginsDir is the directory, relative to Root, the plugin linter enumerates.
	PluginsDir string `mapstructure:"plugins_dir" yaml:"plugins_dir" toml:"plugins_dir"`

	// DefaultPluginRoot is used when marketplace.json has no pluginRoot.
	DefaultPluginRoot string `mapstructure:"default_plugin_root" yaml:"default_plugin_root" toml:"default_plugin_root"`

	// Color is one of auto, always, never.
	Color string `mapstructure:"color" yaml:"color" toml:"color"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:           1,
		Root:              ".",
		PluginsDir:        paths.DefaultPluginsDir,
		DefaultPluginRoot: paths.DefaultPluginsDir,
		Color:             string(logging.ColorAuto),
	}
}

// Init resets Viper and installs defaults, search paths and env binding.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(".")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix("MPLINT")
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault("version", d.Version)
	viper.SetDefault("root", d.Root)
	viper.SetDefault("plugins_dir", d.PluginsDir)
	viper.SetDefault("default_plugin_root", d.DefaultPluginRoot)
	viper.SetDefault("color", d.Color)
}

// Dir returns the user-level config directory.
func Dir() string {
	if dir := os.Getenv("MPLINT_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(paths.ConfigHome(), AppName)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file is an error.
// If path is empty, it searches the default locations and falls back to defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load without a file: defaults apply
		case path != "" && os.IsNotExist(unwrapPathError(err)):
			return nil, errors.Mark(errors.Wrapf(err, "config file not found at %s", path), errors.ErrNotFound)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// Used returns the config file Viper loaded, or "" when defaults are in effect.
func Used() string {
	return viper.ConfigFileUsed()
}

func unwrapPathError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe
	}
	return err
}
