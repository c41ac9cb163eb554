package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecobin-app/ecobin/internal/settings"
)

// newSettingsCmd creates the settings command group.
func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change user settings",
	}
	cmd.AddCommand(newSettingsGetCmd(), newSettingsSetCmd())
	return cmd
}

func newSettingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			s := a.Settings.Load()
			cmd.Println(titleStyle.Render("Settings"))
			cmd.Printf("  %s %s\n", labelStyle.Render("Name:"), s.Name)
			cmd.Printf("  %s %s\n", labelStyle.Render("Location:"), s.Location)
			cmd.Printf("  %s %s\n", labelStyle.Render("Theme:"), s.Theme)
			cmd.Printf("  %s %t\n", labelStyle.Render("Notifications:"), s.Notifications)
			cmd.Printf("  %s %s\n", labelStyle.Render("Units:"), s.Units)
			cmd.Printf("  %s %t\n", labelStyle.Render("Data sharing:"), s.Privacy.DataSharing)
			cmd.Printf("  %s %t\n", labelStyle.Render("Analytics:"), s.Privacy.Analytics)
			return nil
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	var (
		name          string
		location      string
		theme         string
		units         string
		notifications bool
		dataSharing   bool
		analytics     bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings",
		Example: `  # Change display name and theme
  ecobin settings set --name "Amina" --theme dark`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			s := a.Settings.Load()
			if cmd.Flags().Changed("name") {
				s.Name = name
			}
			if cmd.Flags().Changed("location") {
				s.Location = location
			}
			if cmd.Flags().Changed("theme") {
				s.Theme = theme
			}
			if cmd.Flags().Changed("units") {
				s.Units = units
			}
			if cmd.Flags().Changed("notifications") {
				s.Notifications = notifications
			}
			if cmd.Flags().Changed("data-sharing") {
				s.Privacy.DataSharing = dataSharing
			}
			if cmd.Flags().Changed("analytics") {
				s.Privacy.Analytics = analytics
			}

			if err := a.Settings.Save(s); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
			cmd.Println("Settings saved")
			return nil
		},
	}

	defaults := settings.Defaults()
	cmd.Flags().StringVar(&name, "name", defaults.Name, "display name")
	cmd.Flags().StringVar(&location, "location", defaults.Location, "location")
	cmd.Flags().StringVar(&theme, "theme", defaults.Theme, "theme (light, dark)")
	cmd.Flags().StringVar(&units, "units", defaults.Units, "unit system (metric, imperial)")
	cmd.Flags().BoolVar(&notifications, "notifications", defaults.Notifications, "enable notifications")
	cmd.Flags().BoolVar(&dataSharing, "data-sharing", defaults.Privacy.DataSharing, "allow data sharing")
	cmd.Flags().BoolVar(&analytics, "analytics", defaults.Privacy.Analytics, "allow analytics")

	return cmd
}
