// Package commands implements the CLI commands for glyphpath.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/glyphpath/glyphpath/internal/config"
	"github.com/glyphpath/glyphpath/internal/errors"
	"github.com/glyphpath/glyphpath/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// cfg holds the loaded configuration.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	cfg, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "glyphpath",
	Short: "Encode file paths as reversible Unicode filenames",
	Long: `glyphpath converts operating-system file paths into reversible
sequences of Unicode characters that are safe to use as a single
filename, and converts such filenames back into the original path.

Path separators and other characters that filesystems refuse in names
are replaced by fullwidth lookalikes, and well-known directories of
macOS, Linux, and Windows (home, Documents, Downloads, drives, ...)
are compacted to an OS icon plus a directory icon:

  /home/alice/Documents/report.doc  ->  🐧📄alice／report.doc

Use it to name per-file derived artifacts (caches, thumbnails,
extracted features) after the file they came from.`,
	Example: `  # Encode paths
  glyphpath encode /home/alice/Documents/report.doc

  # Decode a filename produced by encode
  glyphpath decode "🐧📄alice／report.doc"

  # Show the escape and icon tables
  glyphpath table --format toml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() != "help" && cmd.Name() != "version" && configLoadErr != nil {
			return errors.NewUserError(configLoadErr, "check your glyphpath config file")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		level = logging.LevelFromVerbosity(verbosity)
	}

	format := logFormat
	if format == "" && cfg != nil {
		format = cfg.LogFormat
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(format) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
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

	slog.SetDefault(slog.New(handler))

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
