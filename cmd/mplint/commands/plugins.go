package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mplint/internal/errors"
	"github.com/thoreinstein/mplint/internal/lint"
	"github.com/thoreinstein/mplint/internal/logging"
	"github.com/thoreinstein/mplint/internal/validator"
)

// pluginsDirFlag holds the value of the --plugins-dir flag.
var pluginsDirFlag string

func init() {
	pluginsCmd.Flags().StringVar(&pluginsDirFlag, "plugins-dir", "",
		"plugins directory, relative to the root (default: config plugins_dir)")
	rootCmd.AddCommand(pluginsCmd)
}

var pluginsCmd = &cobra.Command{
	Use:     "plugins",
	Aliases: []string{"lint"},
	Short:   "Lint every plugin manifest",
	Long: `Lint the manifest of every plugin directory under the plugins directory.

Each plugin needs .claude-plugin/plugin.json with a name, version and
description. Declared commands, agents and skills must use ./-relative
paths that exist. A missing README.md is a warning.

A repository without a plugins directory is not an error.`,
	Example: `  # Lint plugins under ./plugins
  mplint plugins

  # Lint a differently named directory
  mplint plugins --plugins-dir extensions

See Also: mplint marketplace`,
	Args: cobra.NoArgs,
	RunE: runPlugins,
}

func runPlugins(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	dir := cfg.PluginsDir
	if pluginsDirFlag != "" {
		dir = pluginsDirFlag
	}
	pluginsDir := underRoot(dir)
	logger.Debug("linting plugins", "dir", pluginsDir)

	r := newReporter(cmd)
	r.Title("Linting Plugin Manifests")

	results, err := lint.New(lint.WithLogger(logger)).LintAll(pluginsDir)
	switch {
	case errors.Is(err, errors.ErrNotFound):
		r.Info("No plugins directory found, skipping plugin linting")
		return nil
	case err != nil:
		return errors.NewSystemError(err, "Check that the plugins directory is readable")
	case len(results) == 0:
		r.Info("No plugins found in plugins directory")
		return nil
	}

	r.Info("Found %d plugin(s) to validate", len(results))

	total := &validator.Result{}
	for _, pr := range results {
		r.Heading("Validating plugin: " + pr.Name)
		r.Report(pr.Result)
		total.Merge(pr.Result)
	}

	r.Summary(total, validator.Summary{
		Activity: "Linting",
		Clean:    "All plugins passed linting",
	})

	if total.HasErrors() {
		return errors.NewExitError(errors.ErrValidationFailed, errors.ExitUser)
	}
	return nil
}
