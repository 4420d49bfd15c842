// Package root contains the root command for the application
package root

import (
	"kasozi/momo-etl/internal/config"
	"kasozi/momo-etl/internal/logging"
	"kasozi/momo-etl/internal/rules"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Cfg holds the loaded application configuration, populated in
	// PersistentPreRun before any subcommand executes.
	Cfg *config.Config

	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Rules is the active categorization ruleset
	Rules = rules.Default()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "momo-etl",
		Short: "A CLI tool to extract, clean and categorize mobile money SMS transactions.",
		Long: `momo-etl ingests SMS backup XML files, normalizes the messages into
structured transactions, categorizes them with keyword rules and loads
them into a local sqlite database for analytics.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to momo-etl!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.Load()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLogging(cfg))

			if cfg.Rules.File != "" {
				rs, err := rules.LoadFile(cfg.Rules.File)
				if err != nil {
					Log.Fatalf("Failed to load rules file %s: %v", cfg.Rules.File, err)
				}
				Rules = rs
				Log.Debug("Loaded ruleset override", logging.Field{Key: "file", Value: cfg.Rules.File})
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all persistent flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input XML file (overrides configuration)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (overrides configuration)")
}

// InputPath resolves the effective input file, preferring the --input flag
// over the configured default.
func InputPath() string {
	if SharedFlags.Input != "" {
		return SharedFlags.Input
	}
	return Cfg.Input.XMLPath
}

// OutputPath resolves the effective dashboard output file.
func OutputPath() string {
	if SharedFlags.Output != "" {
		return SharedFlags.Output
	}
	return Cfg.Output.DashboardPath
}
