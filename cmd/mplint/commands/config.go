package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mplint/internal/config"
	"github.com/thoreinstein/mplint/internal/errors"
	"github.com/thoreinstein/mplint/internal/paths"
	"github.com/thoreinstein/mplint/pkg/fileutil"
)

// Output formats for config list and config init.
const (
	formatYAML = "yaml"
	formatTOML = "toml"
)

var (
	// configFormat holds the value of the --format flag.
	configFormat string
	// initForce holds the value of the config init --force flag.
	initForce bool
	// initGlobal holds the value of the config init --global flag.
	initGlobal bool
)

func init() {
	configListCmd.Flags().StringVar(&configFormat, "format", formatYAML, "output format: yaml, toml")
	configInitCmd.Flags().StringVar(&configFormat, "format", formatYAML, "file format: yaml, toml")
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	configInitCmd.Flags().BoolVar(&initGlobal, "global", false, "write to the user config directory instead of the current directory")

	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mplint configuration",
	Long: `Manage mplint configuration.

Configuration is read from .mplint.yaml (or .toml/.json) in the current
directory, then from the user config directory. Environment variables
prefixed with MPLINT_ override file values, e.g. MPLINT_PLUGINS_DIR.

Without a subcommand, lists the effective configuration.`,
	Example: `  # Show the effective configuration
  mplint config

  # Read one value
  mplint config get plugins_dir

  # Write a starter config file
  mplint config init

See Also: mplint marketplace, mplint plugins`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the effective configuration",
	Long:  `List the effective configuration, after defaults, files and environment are merged.`,
	Example: `  # List as YAML
  mplint config list

  # List as TOML
  mplint config list --format toml

See Also: mplint config get`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long:  `Get a single configuration value by key.`,
	Example: `  # Get the plugins directory
  mplint config get plugins_dir

See Also: mplint config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a config file holding the default values.

The file is written to ./.mplint.yaml, or to the user config directory
with --global. An existing file is left alone unless --force is given.`,
	Example: `  # Create ./.mplint.yaml
  mplint config init

  # Create a TOML file in the user config directory
  mplint config init --global --format toml

See Also: mplint config list`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	data, err := marshalConfig(cfg, configFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	if !viper.IsSet(key) {
		fmt.Fprintln(cmd.OutOrStdout(), "not set")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(key))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if configFormat != formatYAML && configFormat != formatTOML {
		return errors.NewUserError(errors.Newf("unsupported format: %s", configFormat), "Use --format yaml or --format toml")
	}

	dir := "."
	if initGlobal {
		dir = config.Dir()
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "creating config directory"), "Check permissions on "+dir)
		}
	}
	path := filepath.Join(dir, config.FileName+"."+configFormat)

	if paths.Exists(path) && !initForce {
		return errors.NewUserError(errors.Newf("config file already exists: %s", path), "Use --force to overwrite it")
	}

	var err error
	if configFormat == formatTOML {
		err = fileutil.AtomicWriteTOML(path, config.Default())
	} else {
		err = fileutil.AtomicWriteYAML(path, config.Default())
	}
	if err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing config file"), "Check permissions on "+dir)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// marshalConfig renders c in the given format.
func marshalConfig(c *config.Config, format string) ([]byte, error) {
	switch format {
	case formatYAML:
		data, err := yaml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, "marshaling config")
		}
		return data, nil
	case formatTOML:
		data, err := toml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, "marshaling config")
		}
		return data, nil
	default:
		return nil, errors.NewUserError(errors.Newf("unsupported format: %s", format), "Use --format yaml or --format toml")
	}
}
