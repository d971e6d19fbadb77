// Package cmd provides the CLI commands for the TurskMind application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xvierd/turskmind/internal/adapters/tui"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	cfgFile      string
	verbose      bool
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "turskmind",
	Short: "TurskMind - Tüürk-inspired wellness in your terminal",
	Long: `TurskMind offers guided meditation, breathing and ritual practices,
affirmations and a progress dashboard inspired by Tüürk traditions.

Run "turskmind" with no arguments to open the interactive app.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a config file (default: ~/.turskmind/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", formatText, "Output format: text, json, yaml")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("TurskMind\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(practicesCmd)
	rootCmd.AddCommand(affirmCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(aboutCmd)
	rootCmd.AddCommand(mcpCmd)
}

// signalContext returns a context that is cancelled on interrupt signals.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// runApp opens the full-screen interface for bare "turskmind".
func runApp(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext(cmd.Context())
	defer stop()

	app := tui.NewApp(tui.Deps{
		Runner:       practiceSvc,
		Affirmations: affirmationSvc,
		Progress:     progressSvc,
	}, &appConfig.Theme)

	return app.Run(ctx)
}
