// Package cli implements the ecobin command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ecobin-app/ecobin/internal/app"
	"github.com/ecobin-app/ecobin/internal/config"
	"github.com/ecobin-app/ecobin/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the ecobin CLI.
// It wires up logging and the subcommands (log, stats, impact, classify,
// settings, community, sync, dashboard, config).
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ecobin",
		Short:   "EcoBin local waste tracker",
		Long:    "EcoBin: Log waste items, track environmental impact, and browse community content, fully offline.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd)

			if cmd.Name() == "log" && isTerminal(os.Stdin) && os.Getenv("ECOBIN_HIDE_TIPS") == "" {
				cmd.PrintErrln("Tip: run 'ecobin dashboard' for an interactive overview of your impact.")
			}
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("data-dir", "", "override the data directory")
	cmd.PersistentFlags().Bool("offline", false, "treat the session as offline; new records are stamped pending")

	cmd.AddCommand(
		newLogCmd(),
		newStatsCmd(),
		newImpactCmd(),
		newClassifyCmd(),
		newSettingsCmd(),
		newCommunityCmd(),
		newSyncCmd(),
		newDashboardCmd(),
		newConfigCmd(),
	)

	return cmd
}

// setupLogging configures the package logger from config and flags.
// A broken config file must not take the CLI down; logging falls back to
// console defaults and the failure is reported once.
func setupLogging(cmd *cobra.Command) {
	cfg, cfgErr := config.New()
	if cfgErr != nil {
		cfg = &config.Config{Logging: logging.Config{Level: "info", Format: "console"}}
	}

	loggingCfg := cfg.Logging
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
	}

	logger = logging.Component(logging.New(loggingCfg), "cli")
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("failed to load config, using defaults")
	}
}

// loadApp builds the application state from config plus CLI flag overrides.
func loadApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		cfg.DataDir = dataDir
	}
	if offline, _ := cmd.Flags().GetBool("offline"); offline {
		cfg.Offline = true
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("initializing application: %w", err)
	}
	return a, nil
}

const rootCmdExample = `  # Log 2kg of plastic waste
  ecobin log --category plastic --weight 2

  # Show this week's waste statistics
  ecobin stats --range week

  # Show total environmental impact
  ecobin impact --range all

  # Classify a waste item (simulated)
  ecobin classify photo.jpg

  # Open the interactive dashboard
  ecobin dashboard

  # Run a sync pass over pending records
  ecobin sync

  # Initialize configuration
  ecobin config init`
