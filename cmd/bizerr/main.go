package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bizerr/bizerr/pkg/common/logger"
)

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	CommitSHA = "unknown"
)

var (
	logLevel  string
	logFormat string
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "bizerr",
		Short:   "bizerr - business error-code generator",
		Long:    getBanner(),
		Version: fmt.Sprintf("%s (built: %s, commit: %s)", Version, BuildTime, CommitSHA),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (sets log level to debug)")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newListCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getBanner() string {
	return `
╔══════════════════════════════════════════════════════════╗
║                                                          ║
║   ██████╗ ██╗███████╗███████╗██████╗ ██████╗             ║
║   ██╔══██╗██║╚══███╔╝██╔════╝██╔══██╗██╔══██╗            ║
║   ██████╔╝██║  ███╔╝ █████╗  ██████╔╝██████╔╝            ║
║   ██╔══██╗██║ ███╔╝  ██╔══╝  ██╔══██╗██╔══██╗            ║
║   ██████╔╝██║███████╗███████╗██║  ██║██║  ██║            ║
║   ╚═════╝ ╚═╝╚══════╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝            ║
║                                                          ║
╚══════════════════════════════════════════════════════════╝

  🚀 Generate strongly-typed error codes from YAML

  📦 One YAML file, one enumeration, zero drift
  🌍 Multi-language messages with default fallback
  🔧 Deterministic, diff-stable output

  Generate code with: bizerr generate biz_errors.yaml
  Check a file with:  bizerr validate biz_errors.yaml
  Inspect codes with: bizerr list biz_errors.yaml

`
}

func setupLogging() {
	level := logger.LevelInfo
	if verbose {
		level = logger.LevelDebug
	} else {
		switch logLevel {
		case "debug":
			level = logger.LevelDebug
		case "info":
			level = logger.LevelInfo
		case "warn":
			level = logger.LevelWarn
		case "error":
			level = logger.LevelError
		}
	}

	format := logger.FormatText
	if logFormat == "json" {
		format = logger.FormatJSON
	}

	logger.Default = logger.New(logger.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
	})
}
