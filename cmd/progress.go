package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/xvierd/turskmind/internal/domain"
)

const chartWidth = 30

type progressReport struct {
	Records     []domain.ProgressRecord `json:"records" yaml:"records"`
	Total       int                     `json:"total" yaml:"total"`
	Achievement string                  `json:"achievement" yaml:"achievement"`
	Message     string                  `json:"message" yaml:"message"`
}

// progressCmd shows the progress dashboard.
var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show your wellness journey",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dashboard, err := progressSvc.Dashboard(cmd.Context())
		if err != nil {
			return err
		}

		report := progressReport{
			Records:     dashboard.Records,
			Total:       dashboard.Total,
			Achievement: dashboard.Tier.Label(),
			Message:     dashboard.Tier.Message(),
		}

		return writeFormatted(cmd.OutOrStdout(), report, func(w io.Writer) error {
			fmt.Fprintln(w, domain.ProgressHeader)
			fmt.Fprintln(w, domain.ProgressIntro)
			fmt.Fprintln(w)
			if err := writeChart(w, *dashboard); err != nil {
				return err
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, domain.AchievementsHeader)
			fmt.Fprintln(w, report.Message)
			fmt.Fprintf(w, "Total sessions: %d\n", report.Total)
			return nil
		})
	},
}

// writeChart draws one bar per record, scaled to the largest count.
func writeChart(w io.Writer, d domain.ProgressDashboard) error {
	top := d.MaxSessions()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range d.Records {
		n := 0
		if top > 0 {
			n = r.SessionsCompleted * chartWidth / top
		}
		fmt.Fprintf(tw, "  %s\t%s %d\n", r.Practice, strings.Repeat("█", n), r.SessionsCompleted)
	}
	return tw.Flush()
}
