package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edlight/skafo/internal/catalog"
	"github.com/edlight/skafo/internal/classify"
	"github.com/edlight/skafo/internal/engine"
)

var checkCmd = &cobra.Command{
	Use:   "check [catalog.json]",
	Short: "Validate rule tables and summarize a catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := engine.Validate(); err != nil {
			return fmt.Errorf("rule tables: %w", err)
		}
		fmt.Println("Rule tables: OK")

		if len(args) == 0 {
			return nil
		}

		c, err := catalog.Load(args[0])
		if err != nil {
			return err
		}

		var answered, scaffolded, withHints int
		byCategory := map[classify.Category]int{}
		for _, h := range c.Walk() {
			byCategory[classify.ClassifySubject(h.Subject)]++
			if h.Question.Answered() {
				answered++
			}
			if h.Question.ScaffoldText != "" {
				scaffolded++
			}
			if len(h.Question.Hints) > 0 {
				withHints++
			}
		}

		total := c.QuestionCount()
		fmt.Printf("\nExams:      %d\n", len(c))
		fmt.Printf("Questions:  %d\n", total)
		fmt.Printf("Answered:   %d\n", answered)
		fmt.Printf("Scaffolded: %d\n", scaffolded)
		fmt.Printf("With hints: %d\n", withHints)

		if total == 0 {
			return nil
		}

		cats := make([]classify.Category, 0, len(byCategory))
		for cat := range byCategory {
			cats = append(cats, cat)
		}
		sort.Slice(cats, func(i, j int) bool {
			if byCategory[cats[i]] != byCategory[cats[j]] {
				return byCategory[cats[i]] > byCategory[cats[j]]
			}
			return cats[i] < cats[j]
		})

		fmt.Println("\nBy category")
		fmt.Println(strings.Repeat("─", 36))
		for _, cat := range cats {
			n := byCategory[cat]
			fmt.Printf("%-20s  %5d  %4.1f%%\n", cat, n, 100*float64(n)/float64(total))
		}
		return nil
	},
}
