package cmd

import (
	"github.com/spf13/cobra"

	"github.com/edlight/skafo/internal/catalog"
	"github.com/edlight/skafo/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview <catalog.json>",
	Short: "Browse generated scaffolds and hints in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Load(args[0])
		if err != nil {
			return err
		}
		return preview.Run(c)
	},
}
