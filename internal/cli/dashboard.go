package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ecobin-app/ecobin/internal/timerange"
	"github.com/ecobin-app/ecobin/internal/tui"
)

// newDashboardCmd creates the dashboard command, an interactive overview of
// waste statistics and environmental impact.
func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive dashboard of waste statistics and impact",
		Long: `Open an interactive dashboard showing waste statistics and environmental
impact side by side. Switch the time window with w/m/y/a, refresh with r,
and quit with q.

When stdout is not a terminal the dashboard falls back to a one-shot
weekly overview.`,
		Example: `  # Open the interactive dashboard
  ecobin dashboard`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			if !isTerminal(os.Stdout) {
				overview, err := a.GetOverview(cmd.Context(), timerange.Week)
				if err != nil {
					return err
				}
				cmd.Print(renderStats(overview.Stats, timerange.Week))
				cmd.Println()
				cmd.Print(renderImpactTotal(overview.Impact, timerange.Week))
				return nil
			}

			model := tui.NewDashboardModel(cmd.Context(), a.GetOverview)
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running dashboard: %w", err)
			}
			return nil
		},
	}
}
