package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edlight/skafo/internal/catalog"
	"github.com/edlight/skafo/internal/llm"
	"github.com/edlight/skafo/internal/refine"
	"github.com/edlight/skafo/internal/store"
)

var refineCmd = &cobra.Command{
	Use:   "refine <catalog.json>",
	Short: "Replace rule-generated hints with LLM-written ones",
	Long: "Refine sends questions to an LLM in batches and replaces their hints with " +
		"question-specific progressive ones. Progress is checkpointed per question, " +
		"so an interrupted run can be resumed with --resume.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resume, _ := cmd.Flags().GetBool("resume")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		batchSize, _ := cmd.Flags().GetInt("batch-size")
		limit, _ := cmd.Flags().GetInt("limit")

		c, err := catalog.Load(args[0])
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		if dryRun {
			return printDryRun(ctx, c, s.Checkpoints(), resume, batchSize)
		}

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return err
			}
			cfg = discovered
		}

		provider, err := llm.NewProvider(ctx, cfg, s.Events())
		if err != nil {
			return err
		}

		fmt.Printf("Refining with %s (%d questions per call)\n",
			provider.ModelID(), effectiveBatchSize(batchSize))

		rep, err := refine.New(provider, s.Checkpoints()).Run(ctx, c, refine.Options{
			BatchSize: batchSize,
			Resume:    resume,
			Limit:     limit,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Refined:       %d\n", rep.Refined)
		fmt.Printf("Failed:        %d\n", rep.Failed)
		fmt.Printf("Skipped done:  %d\n", rep.SkippedDone)
		fmt.Printf("Batches:       %d\n", rep.Batches)

		if rep.Refined == 0 {
			fmt.Println("Nothing refined: catalog not written.")
			return nil
		}

		if err := c.Save(args[0]); err != nil {
			return err
		}
		fmt.Printf("Saved %s (backup at %s.bak)\n", args[0], args[0])
		return nil
	},
}

// printDryRun shows the prompt of the first pending batch without calling
// the provider.
func printDryRun(ctx context.Context, c catalog.Catalog, cp store.CheckpointRepo, resume bool, batchSize int) error {
	done := map[string]bool{}
	if resume {
		var err error
		done, err = cp.Done(ctx)
		if err != nil {
			return fmt.Errorf("load checkpoints: %w", err)
		}
	}

	var pending []catalog.Handle
	for _, h := range c.Walk() {
		if done[h.Key()] {
			continue
		}
		pending = append(pending, h)
		if len(pending) == effectiveBatchSize(batchSize) {
			break
		}
	}

	fmt.Printf("Dry run: first batch of %d pending questions\n\n", len(pending))
	fmt.Println(refine.Prompt(pending))
	return nil
}

func effectiveBatchSize(n int) int {
	if n > 0 {
		return n
	}
	return refine.DefaultBatchSize
}

func init() {
	refineCmd.Flags().Bool("resume", false, "Skip questions already checkpointed")
	refineCmd.Flags().Bool("dry-run", false, "Show the first batch prompt without calling the API")
	refineCmd.Flags().IntP("batch-size", "b", 0, fmt.Sprintf("Questions per API call (default %d)", refine.DefaultBatchSize))
	refineCmd.Flags().IntP("limit", "n", 0, "Refine at most N pending questions (0 = all)")
}
