package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edlight/skafo/internal/catalog"
	"github.com/edlight/skafo/internal/engine"
	"github.com/edlight/skafo/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run <catalog.json>",
	Short: "Generate scaffolds and hints for every question in a catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workers, _ := cmd.Flags().GetInt("workers")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		if err := engine.Validate(); err != nil {
			return fmt.Errorf("rule tables: %w", err)
		}

		c, err := catalog.Load(args[0])
		if err != nil {
			return err
		}

		rep := engine.Run(c, workers)

		fmt.Printf("Processed:        %d\n", rep.Processed)
		fmt.Printf("Scaffolded:       %d\n", rep.Scaffolded)
		fmt.Printf("Multi-part:       %d\n", rep.MultiPart)
		fmt.Printf("Skipped answered: %d\n", rep.SkippedAnswered)

		if dryRun {
			fmt.Println("\nDry run: catalog not written.")
			return nil
		}

		if err := c.Save(args[0]); err != nil {
			return err
		}
		fmt.Printf("Saved %s (backup at %s.bak)\n", args[0], args[0])

		saveRunReport(cmd, args[0], rep)
		return nil
	},
}

// saveRunReport records the pass in the local database. The catalog write
// already succeeded, so report persistence failures only warn.
func saveRunReport(cmd *cobra.Command, catalogPath string, rep engine.Report) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: resolve database path: %v\n", err)
		return
	}
	s, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: open database: %v\n", err)
		return
	}
	defer s.Close()

	id, err := s.Reports().Save(context.Background(), &store.RunReport{
		CatalogPath:     catalogPath,
		Processed:       rep.Processed,
		Scaffolded:      rep.Scaffolded,
		MultiPart:       rep.MultiPart,
		SkippedAnswered: rep.SkippedAnswered,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: save run report: %v\n", err)
		return
	}
	fmt.Printf("Run recorded as %s\n", id)
}

func init() {
	runCmd.Flags().IntP("workers", "w", 0, "Worker count (0 = number of CPUs)")
	runCmd.Flags().Bool("dry-run", false, "Process without writing the catalog back")
}
