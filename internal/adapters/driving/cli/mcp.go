package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/dsctl/internal/adapters/driving/mcp"
	"github.com/custodia-labs/dsctl/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

Every registered command is exposed as a tool taking {"args": [...]}; the
list_commands tool describes them. Recent invocations are available as the
dsctl://history resource.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

While the server runs, edits to config.toml are applied without a restart.

Examples:
  # Stdio mode (default)
  dsctl mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  dsctl mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Commands: commandService,
		History:  historyService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if configWatcher != nil {
		go func() {
			if err := configWatcher(cmd.Context()); err != nil {
				logger.Warn("config watch stopped: %v", err)
			}
		}()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
