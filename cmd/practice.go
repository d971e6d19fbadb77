package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xvierd/turskmind/internal/adapters/tui"
	"github.com/xvierd/turskmind/internal/domain"
)

var practicePlain bool

// practiceCmd runs one practice countdown in the current terminal.
var practiceCmd = &cobra.Command{
	Use:   "practice [name]",
	Short: "Run a guided practice countdown",
	Long: `Run the countdown for a practice. The name may be a key
(meditation, breathing, ritual) or any part of the practice label.
Without a name, pick one from a list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		practice, err := resolvePractice(args)
		if err != nil {
			return err
		}

		ctx, stop := signalContext(cmd.Context())
		defer stop()

		var session *domain.PracticeSession
		if practicePlain || !tui.IsTerminal() {
			session, err = tui.RunPlain(ctx, practiceSvc, practice.Key, cmd.OutOrStdout())
		} else {
			session, err = tui.RunInline(ctx, practiceSvc, practice.Key, &appConfig.Theme)
		}
		if err != nil {
			return fmt.Errorf("failed to run practice: %w", err)
		}

		if session.Status == domain.SessionStatusCancelled {
			fmt.Fprintf(cmd.ErrOrStderr(), "Stopped '%s'.\n", session.Label)
		}
		return nil
	},
}

func init() {
	practiceCmd.Flags().BoolVar(&practicePlain, "plain", false, "Print ticks as plain lines instead of the live view")
}

// resolvePractice finds the practice named by args, or asks for one.
func resolvePractice(args []string) (domain.Practice, error) {
	if len(args) == 1 {
		p, err := domain.MatchPractice(args[0])
		if errors.Is(err, domain.ErrPracticeNotFound) {
			return p, fmt.Errorf("no practice matches %q (try: %s)", args[0], strings.Join(practiceKeys(), ", "))
		}
		return p, err
	}

	if !tui.IsTerminal() {
		return domain.Practice{}, fmt.Errorf("a practice name is required (try: %s)", strings.Join(practiceKeys(), ", "))
	}

	practices := domain.Practices()
	labels := make([]string, len(practices))
	for i, p := range practices {
		labels[i] = fmt.Sprintf("%s  %s", domain.FormatRemaining(p.Duration), p.Label)
	}
	result := tui.RunPicker(domain.PracticesHeader, labels, domain.QuickTip, &appConfig.Theme)
	if result.Aborted {
		return domain.Practice{}, errors.New("no practice selected")
	}
	return practices[result.Index], nil
}

func practiceKeys() []string {
	var keys []string
	for _, p := range domain.Practices() {
		keys = append(keys, p.Key)
	}
	return keys
}
