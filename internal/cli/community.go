package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecobin-app/ecobin/internal/format"
)

// newCommunityCmd creates the community command group over the seeded
// fixture content.
func newCommunityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "community",
		Short: "Browse community challenges, leaderboard, events, and articles",
	}
	cmd.AddCommand(
		newCommunityChallengesCmd(),
		newCommunityLeaderboardCmd(),
		newCommunityEventsCmd(),
		newCommunityContentCmd(),
		newCommunityStatsCmd(),
	)
	return cmd
}

func newCommunityChallengesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "challenges",
		Short: "List active challenges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			challenges, err := a.Community.Challenges()
			if err != nil {
				return fmt.Errorf("failed to load challenges: %w", err)
			}

			cmd.Println(titleStyle.Render("Community Challenges"))
			for _, c := range challenges {
				cmd.Printf("\n  %s (%d days, %s participants)\n", labelStyle.Render(c.Name),
					c.DurationDays, format.Number(int64(c.Participants)))
				cmd.Printf("    %s\n", c.Description)
				cmd.Printf("    %s\n", subtleStyle.Render("Impact so far: "+c.Impact))
			}
			return nil
		},
	}
}

func newCommunityLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the community leaderboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			entries, err := a.Community.Leaderboard()
			if err != nil {
				return fmt.Errorf("failed to load leaderboard: %w", err)
			}

			cmd.Println(titleStyle.Render("Leaderboard"))
			for i, e := range entries {
				cmd.Printf("  %2d. %-12s %s pts  %s diverted  %d-day streak\n",
					i+1, e.Name, format.Number(int64(e.Points)), e.WasteDiverted, e.StreakDays)
			}
			return nil
		},
	}
}

func newCommunityEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List local events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			events, err := a.Community.Events()
			if err != nil {
				return fmt.Errorf("failed to load events: %w", err)
			}

			cmd.Println(titleStyle.Render("Local Events"))
			for _, e := range events {
				cmd.Printf("\n  %s  %s\n", labelStyle.Render(e.Date), e.Name)
				cmd.Printf("    %s (%d registered)\n", e.Location, e.Participants)
				cmd.Printf("    %s\n", subtleStyle.Render(e.Description))
			}
			return nil
		},
	}
}

func newCommunityContentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "content",
		Short: "List educational articles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			articles, err := a.Community.Articles()
			if err != nil {
				return fmt.Errorf("failed to load articles: %w", err)
			}

			cmd.Println(titleStyle.Render("Educational Content"))
			for _, art := range articles {
				cmd.Printf("\n  %s (%s, %s)\n", labelStyle.Render(art.Title), art.Kind, art.ReadTime)
				cmd.Printf("    %s\n", art.Content)
			}
			return nil
		},
	}
}

func newCommunityStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate community figures",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			stats, err := a.Community.CommunityStats()
			if err != nil {
				return fmt.Errorf("failed to load community stats: %w", err)
			}

			cmd.Println(titleStyle.Render("Community"))
			cmd.Printf("  %s %s\n", labelStyle.Render("Members:"), format.Number(int64(stats.TotalMembers)))
			cmd.Printf("  %s %d\n", labelStyle.Render("Active challenges:"), stats.ActiveChallenges)
			cmd.Printf("  %s %s\n", labelStyle.Render("Waste diverted:"), stats.TotalWasteDiverted)
			cmd.Printf("  %s %s\n", labelStyle.Render("Carbon saved:"), stats.CarbonSaved)
			cmd.Printf("  %s %d\n", labelStyle.Render("Trees equivalent:"), stats.TreesEquivalent)
			return nil
		},
	}
}
