package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/turskmind/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI assistants.
The server exposes practices, countdowns, affirmations and progress as tools.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol; keep human output on stderr.
		errOut := cmd.ErrOrStderr()
		fmt.Fprintln(errOut, "🚀 Starting MCP server...")
		fmt.Fprintln(errOut, "   The server will communicate via stdio")
		fmt.Fprintln(errOut, "   Press Ctrl+C to stop")

		ctx, stop := signalContext(cmd.Context())
		defer stop()

		server := mcp.NewServer(stateService, Version)
		defer func() { _ = server.Stop() }()

		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}
