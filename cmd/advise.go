package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/halehq/hale/internal/advice"
)

var adviseCmd = &cobra.Command{
	Use:   "advise <description>",
	Short: "Look up condition advice from the command line",
	Long:  "Resolves a free-text description against the advice cabinet, the same way the consult screen does.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		explain, _ := cmd.Flags().GetBool("explain")

		resolver, err := buildResolver()
		if err != nil {
			return err
		}

		res := resolver.Resolve(strings.Join(args, " "))
		if !res.Found() {
			fmt.Printf("No advice available for %q.\n", res.Query)
			fmt.Printf("Covered conditions: %s.\n", strings.Join(resolver.Conditions(), ", "))
			return nil
		}

		rec := res.Record
		title := color.New(color.FgGreen, color.Bold).Sprint(strings.ToUpper(rec.Condition[:1]) + rec.Condition[1:])
		fmt.Println(title)
		fmt.Printf("  Symptoms:  %s\n", strings.Join(rec.Symptoms, ", "))
		fmt.Printf("  Medicines: %s\n", rec.Medicines)
		fmt.Printf("  Lifestyle: %s\n", rec.Lifestyle)
		fmt.Printf("  %s\n", color.New(color.FgRed).Sprint("⚠ "+rec.Warning))

		if explain {
			switch res.Source {
			case advice.SourceExact:
				fmt.Println("\nResolved by exact name match.")
			case advice.SourceClassifier:
				fmt.Printf("\nResolved by the classifier (score %.3f).\n", res.Score)
			}
		}
		return nil
	},
}

func init() {
	adviseCmd.Flags().Bool("explain", false, "Show how the description was resolved")
}
