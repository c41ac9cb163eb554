package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecobin-app/ecobin/internal/config"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return cmd
}

// newConfigInitCmd creates the config init command, writing the default
// configuration file.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create configuration
  ecobin config init

  # Create configuration, overwriting existing
  ecobin config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			if !force {
				if _, statErr := os.Stat(cfg.ConfigPath()); statErr == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				} else if !os.IsNotExist(statErr) {
					return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), statErr)
				}
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized successfully\n")
			cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// newConfigShowCmd creates the config show command.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			cmd.Println(titleStyle.Render("Configuration"))
			cmd.Printf("  %s %s\n", labelStyle.Render("Config file:"), cfg.ConfigPath())
			cmd.Printf("  %s %s\n", labelStyle.Render("Data dir:"), cfg.DataDir)
			cmd.Printf("  %s %t\n", labelStyle.Render("Offline:"), cfg.Offline)
			cmd.Printf("  %s %s\n", labelStyle.Render("Log level:"), cfg.Logging.Level)
			return nil
		},
	}
}
