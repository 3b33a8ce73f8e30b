package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mplint/internal/errors"
	"github.com/thoreinstein/mplint/internal/logging"
	"github.com/thoreinstein/mplint/internal/marketplace"
	"github.com/thoreinstein/mplint/internal/paths"
	"github.com/thoreinstein/mplint/internal/validator"
)

func init() {
	rootCmd.AddCommand(marketplaceCmd)
}

var marketplaceCmd = &cobra.Command{
	Use:     "marketplace",
	Aliases: []string{"validate"},
	Short:   "Validate the marketplace manifest",
	Long: `Validate .claude-plugin/marketplace.json under the repository root.

Checks the required name, owner and plugins fields, then every plugin
entry: names must be kebab-case and unique, and each entry needs a source.
Local sources must be directories with their own .claude-plugin/plugin.json;
github and url sources are checked for their required fields only.`,
	Example: `  # Validate the current repository
  mplint marketplace

  # Validate another checkout with colors forced on
  mplint marketplace --root ./checkout --color always

See Also: mplint plugins`,
	Args: cobra.NoArgs,
	RunE: runMarketplace,
}

func runMarketplace(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())
	root := repoRoot()
	logger.Debug("validating marketplace", "root", root)

	r := newReporter(cmd)
	r.Title("Validating Claude Plugins Marketplace")

	v := marketplace.New(root,
		marketplace.WithDefaultPluginRoot(cfg.DefaultPluginRoot),
		marketplace.WithLogger(logger),
	)

	result, err := v.Check()
	r.Report(result)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return errors.NewUserError(err, "Run mplint from the marketplace root or pass --root")
		}
		return errors.NewUserError(err, "Fix the JSON syntax in "+paths.MarketplacePath(root))
	}

	r.Summary(result, validator.Summary{
		Activity: "Validation",
		Clean:    "Validation passed successfully",
	})

	if result.HasErrors() {
		return errors.NewExitError(errors.ErrValidationFailed, errors.ExitUser)
	}
	return nil
}
