package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/xvierd/turskmind/internal/domain"
)

type practiceView struct {
	Key      string `json:"key" yaml:"key"`
	Label    string `json:"label" yaml:"label"`
	Seconds  int    `json:"seconds" yaml:"seconds"`
	Duration string `json:"duration" yaml:"duration"`
}

// practicesCmd lists the practice catalog.
var practicesCmd = &cobra.Command{
	Use:   "practices",
	Short: "List the guided practices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var views []practiceView
		for _, p := range domain.Practices() {
			views = append(views, practiceView{
				Key:      p.Key,
				Label:    p.Label,
				Seconds:  p.Seconds(),
				Duration: domain.FormatRemaining(p.Duration),
			})
		}

		return writeFormatted(cmd.OutOrStdout(), views, func(w io.Writer) error {
			fmt.Fprintln(w, domain.PracticesHeader)
			fmt.Fprintln(w)
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			for _, v := range views {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", v.Key, v.Duration, v.Label)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, domain.QuickTip)
			return nil
		})
	},
}
