package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/halehq/hale/internal/bmi"
	"github.com/halehq/hale/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent check-ups",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open check-up log: %w", err)
		}
		defer s.Close()

		repo, err := s.EventRepo()
		if err != nil {
			return fmt.Errorf("prepare check-up log: %w", err)
		}

		summaries, err := repo.QueryCheckupSummaries(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query check-ups: %w", err)
		}
		if len(summaries) == 0 {
			fmt.Println("No check-ups recorded yet.")
			return nil
		}

		// Header.
		fmt.Printf("%-19s  %5s  %-12s  %-12s  %7s  %s\n",
			"Timestamp", "BMI", "Category", "Goal", "Lookups", "Duration")
		fmt.Println(strings.Repeat("─", 76))

		for _, sum := range summaries {
			category := sum.Category
			if c, ok := bmi.ParseCategory(sum.Category); ok {
				category = categoryColor(c).Sprintf("%-12s", sum.Category)
			} else {
				category = fmt.Sprintf("%-12s", category)
			}
			fmt.Printf("%-19s  %5.1f  %s  %-12s  %7d  %s\n",
				sum.Timestamp.Local().Format("2006-01-02 15:04:05"),
				sum.BMI,
				category,
				sum.Goal,
				sum.LookupCount,
				(time.Duration(sum.DurationSecs) * time.Second).String(),
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of check-ups to list")
}
