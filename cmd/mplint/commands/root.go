// Package commands implements the CLI commands for mplint.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mplint/cmd"
	"github.com/thoreinstein/mplint/internal/config"
	"github.com/thoreinstein/mplint/internal/errors"
	"github.com/thoreinstein/mplint/internal/logging"
	"github.com/thoreinstein/mplint/internal/validator"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// rootFlag holds the value of the --root flag.
var rootFlag string

// colorFlag holds the value of the --color flag.
var colorFlag string

// cfg is the loaded configuration. It falls back to defaults when loading fails.
var cfg = config.Default()

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error log output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./.mplint.yaml, then the user config directory)")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "",
		"marketplace repository root (default: config root, then the current directory)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "",
		"colorize output: auto, always, never (default: config color)")

	rootCmd.Version = cmd.Version + " (" + cmd.ShortCommit() + ")"
	rootCmd.SetVersionTemplate("mplint version {{.Version}}\n")

	// Errors are reported by Execute.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loaded, err := config.Load(configFile)
	configLoadErr = err
	if err != nil {
		cfg = config.Default()
		return
	}
	cfg = loaded
}

var rootCmd = &cobra.Command{
	Use:   "mplint",
	Short: "Validate a plugin marketplace repository",
	Long: `mplint validates a plugin marketplace repository.

It checks the marketplace manifest at .claude-plugin/marketplace.json and
the manifest of every plugin under the plugins directory. Problems are
reported as errors, which fail the run, or warnings, which do not.

Intended as a continuous-integration gate: the exit status is 0 when no
errors were found and non-zero otherwise.`,
	Example: `  # Validate the marketplace manifest in the current directory
  mplint marketplace

  # Lint every plugin manifest
  mplint plugins

  # Validate a repository elsewhere
  mplint marketplace --root ../my-marketplace

  See Also: mplint config, mplint version`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("MPLINT_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case logging.FormatText, "":
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	default:
		return errors.NewUserError(errors.Newf("invalid log format: %s", logFormat), "Use --log-format text or --log-format json")
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewSystemError(errors.Wrap(err, "opening log file"), "Check that the log file path is writable")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports config load errors and validates the --color flag.
func checkConfig(cmd *cobra.Command) error {
	// help and version work even with a broken config
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	if colorFlag != "" && !logging.ValidColorMode(colorFlag) {
		return errors.NewUserError(errors.Newf("invalid color mode: %s", colorFlag), "Use --color auto, always or never")
	}

	if used := config.Used(); used != "" {
		logging.FromContext(cmd.Context()).Debug("loaded config", "path", used)
	}
	return nil
}

// repoRoot returns the marketplace root: --root, then the config root.
func repoRoot() string {
	if rootFlag != "" {
		return rootFlag
	}
	if cfg.Root != "" {
		return cfg.Root
	}
	return "."
}

// underRoot resolves dir against the marketplace root unless it is absolute.
func underRoot(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(repoRoot(), dir)
}

// colorMode returns the effective color mode: --color, then the config value.
func colorMode() logging.ColorMode {
	if colorFlag != "" {
		return logging.ColorMode(colorFlag)
	}
	return logging.ColorMode(cfg.Color)
}

// newReporter creates a diagnostics reporter on the command's stdout.
func newReporter(cmd *cobra.Command) *validator.Reporter {
	out := cmd.OutOrStdout()
	return validator.NewReporter(out, logging.UseColor(out, colorMode()))
}

// Execute runs the root command with the process arguments and returns the
// process exit code.
func Execute() int {
	return run(os.Args[1:])
}

// ExecuteSubcommand runs the named subcommand as if it had been given first
// on the command line. It backs the single-purpose binaries.
func ExecuteSubcommand(name string) int {
	return run(append([]string{name}, os.Args[1:]...))
}

func run(args []string) int {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	reportError(rootCmd.ErrOrStderr(), err)
	return errors.ExitCode(err)
}

// reportError prints err and any suggestion to w. Validation failures are
// already summarized on stdout and print nothing further.
func reportError(w io.Writer, err error) {
	if err == nil || errors.Is(err, errors.ErrValidationFailed) {
		return
	}

	fmt.Fprintf(w, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintln(w, exitErr.Suggestion)
	}
}
