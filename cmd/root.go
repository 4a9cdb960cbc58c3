package cmd

import (
	"github.com/spf13/cobra"

	"github.com/halehq/hale/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "hale",
	Short: "Terminal health companion",
	Long:  "Hale measures your BMI, suggests a health goal, and answers free-text questions about common conditions, all from the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the check-up log (defaults to the user data dir)")

	rootCmd.AddCommand(bmiCmd)
	rootCmd.AddCommand(adviseCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path from the --db flag, falling
// back to the default XDG data path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
