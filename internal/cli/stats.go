package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecobin-app/ecobin/internal/timerange"
)

// parseRangeFlag reads and validates the --range flag.
func parseRangeFlag(cmd *cobra.Command) (timerange.Range, error) {
	raw, _ := cmd.Flags().GetString("range")
	rng, err := timerange.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid --range: %w", err)
	}
	return rng, nil
}

// newStatsCmd creates the stats command.
func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show waste statistics for a time range",
		Example: `  # This week's statistics
  ecobin stats --range week

  # Everything ever logged
  ecobin stats --range all`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rng, err := parseRangeFlag(cmd)
			if err != nil {
				return err
			}

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			stats, err := a.Waste.Stats(rng)
			if err != nil {
				return fmt.Errorf("failed to compute stats: %w", err)
			}

			cmd.Print(renderStats(stats, rng))
			return nil
		},
	}

	cmd.Flags().StringP("range", "r", "month", "time range (week, month, year, all)")
	return cmd
}

// newImpactCmd creates the impact command.
func newImpactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "impact",
		Short: "Show aggregate environmental impact for a time range",
		Example: `  # Total impact over the last year
  ecobin impact --range year`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rng, err := parseRangeFlag(cmd)
			if err != nil {
				return err
			}

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			total, err := a.Impact.Total(rng)
			if err != nil {
				return fmt.Errorf("failed to aggregate impact: %w", err)
			}

			cmd.Print(renderImpactTotal(total, rng))
			return nil
		},
	}

	cmd.Flags().StringP("range", "r", "all", "time range (week, month, year, all)")
	return cmd
}
