package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halehq/hale/internal/textclass"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the check-up log and the cached model",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if !force {
			fmt.Printf("Delete the check-up log at %s? [y/N] ", dbPath)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			answer := strings.ToLower(strings.TrimSpace(line))
			if answer != "y" && answer != "yes" {
				fmt.Println("Nothing deleted.")
				return nil
			}
		}

		if err := os.Remove(dbPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("delete check-up log: %w", err)
		}
		// SQLite WAL sidecars.
		for _, suffix := range []string{"-wal", "-shm"} {
			_ = os.Remove(dbPath + suffix)
		}

		if cache, err := textclass.OpenCache("hale"); err == nil {
			if err := cache.DropAll(); err != nil {
				fmt.Fprintln(os.Stderr, "Could not clear the model cache:", err)
			}
		}

		fmt.Println("Check-up log cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
