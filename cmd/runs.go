package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edlight/skafo/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded engine runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		reports, err := s.Reports().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}

		if len(reports) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-6s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Proc", "Scaff", "Multi", "Skipped", "Catalog")
		fmt.Println(strings.Repeat("─", 110))

		for _, r := range reports {
			fmt.Printf("%-36s  %-19s  %-6d  %-6d  %-6d  %-7d  %s\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Processed,
				r.Scaffolded,
				r.MultiPart,
				r.SkippedAnswered,
				r.CatalogPath,
			)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().IntP("limit", "l", 20, "Number of runs to show")
}
