package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/turskmind/internal/domain"
)

// aboutCmd prints the about text.
var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "About TurskMind",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, domain.AboutHeader)
		fmt.Fprintln(out)
		fmt.Fprintln(out, domain.AboutText)
		fmt.Fprintln(out)
		fmt.Fprintln(out, domain.Proverb)
		return nil
	},
}
