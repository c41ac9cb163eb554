package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newClassifyCmd creates the classify command. Classification is simulated;
// the command exists so a real model integration slots in without changing
// the interface.
func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <input>",
		Short: "Classify a waste item (simulated)",
		Long: `Classifies a waste item and prints disposal guidance.

No real vision model is integrated; the category is chosen pseudo-randomly
with a simulated processing delay. The disposal suggestions and alternatives
for the resulting category are real catalog content.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			cmd.Println(subtleStyle.Render("Analyzing..."))

			result, err := a.Classifier.Classify(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("classification failed: %w", err)
			}

			cmd.Print(renderClassification(result))
			return nil
		},
	}
}
