package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xvierd/turskmind/internal/domain"
)

var (
	affirmRandom bool
	affirmCustom string
	affirmSave   int
)

type ackView struct {
	Level   string `json:"level" yaml:"level"`
	Message string `json:"message" yaml:"message"`
}

// affirmCmd lists, picks or acknowledges affirmations.
var affirmCmd = &cobra.Command{
	Use:   "affirm",
	Short: "Show or save an affirmation",
	Long: `Show the Tüürk affirmations. Use --random for a single one,
--save N to keep affirmation N close, or --custom to save your own.
Nothing is written to disk.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		switch {
		case cmd.Flags().Changed("custom"):
			ack, err := affirmationSvc.SaveCustom(affirmCustom)
			if errors.Is(err, domain.ErrEmptyAffirmation) {
				// A warning for the user, not a failure.
				fmt.Fprintln(cmd.ErrOrStderr(), ack.Message)
				return nil
			}
			if err != nil {
				return err
			}
			return writeAck(out, ack)

		case cmd.Flags().Changed("save"):
			list := affirmationSvc.List()
			if affirmSave < 1 || affirmSave > len(list) {
				return fmt.Errorf("--save must be between 1 and %d", len(list))
			}
			return writeAck(out, affirmationSvc.Save(list[affirmSave-1]))

		case affirmRandom:
			text := affirmationSvc.Random()
			return writeFormatted(out, map[string]string{"affirmation": text}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, text)
				return err
			})
		}

		list := affirmationSvc.List()
		return writeFormatted(out, list, func(w io.Writer) error {
			fmt.Fprintln(w, domain.AffirmationsHeader)
			fmt.Fprintln(w)
			for i, a := range list {
				fmt.Fprintf(w, "  %d. %s\n", i+1, a)
			}
			return nil
		})
	},
}

func init() {
	affirmCmd.Flags().BoolVar(&affirmRandom, "random", false, "Show one random affirmation")
	affirmCmd.Flags().StringVar(&affirmCustom, "custom", "", "Save your own affirmation")
	affirmCmd.Flags().IntVar(&affirmSave, "save", 0, "Save affirmation number N from the list")
	affirmCmd.MarkFlagsMutuallyExclusive("random", "custom", "save")
}

func writeAck(w io.Writer, ack domain.Acknowledgment) error {
	return writeFormatted(w, ackView{Level: string(ack.Level), Message: ack.Message}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, ack.Message)
		return err
	})
}
