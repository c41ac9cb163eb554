package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecobin-app/ecobin/internal/format"
	"github.com/ecobin-app/ecobin/internal/waste"
)

// newLogCmd creates the log command for recording a waste item.
func newLogCmd() *cobra.Command {
	var (
		category string
		item     string
		weight   float64
		location string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a waste item and compute its environmental impact",
		Example: `  # Log 2kg of plastic
  ecobin log --category plastic --weight 2

  # Log a named item with a location
  ecobin log --category electronic --item "old phone" --location "Westlands"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			rec, impactRec, err := a.LogWaste(cmd.Context(), waste.LogInput{
				Category: category,
				Item:     item,
				Weight:   weight,
				Location: location,
			})
			if err != nil {
				return fmt.Errorf("failed to log waste: %w", err)
			}

			meta := waste.Describe(rec.Category)
			cmd.Printf("Logged %s %s (%s, %s)\n", meta.Icon, rec.Item, meta.DisplayName, format.Weight(rec.Weight))
			cmd.Printf("Environmental impact: %s saved\n\n", format.Carbon(impactRec.CarbonSaved))
			cmd.Print(renderImpactRecord(impactRec))

			if rec.SyncStatus == waste.SyncPending {
				cmd.Println(subtleStyle.Render("Record stored offline; run 'ecobin sync' when back online."))
			}
			return nil
		},
	}

	categories := make([]string, 0, len(waste.Categories))
	for _, c := range waste.Categories {
		categories = append(categories, c.String())
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "waste category ("+strings.Join(categories, ", ")+")")
	cmd.Flags().StringVarP(&item, "item", "i", "", "item name")
	cmd.Flags().Float64VarP(&weight, "weight", "w", 0, "weight in kilograms")
	cmd.Flags().StringVarP(&location, "location", "l", "", "location (defaults to your settings location)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
