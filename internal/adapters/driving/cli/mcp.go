package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menusearch/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes three tools: search, open and show. The search index is
built on the first query and rebuilt when a local catalog file changes.
Menus are published as the menusearch://menus resource.

By default, the server communicates over stdio using JSON-RPC. Use --http
to listen on an address instead, for example to test with MCP Inspector.

Examples:
  # Stdio mode
  menusearch mcp

  # HTTP mode
  menusearch mcp --http :8080

Assistant configuration:
  {
    "mcpServers": {
      "menusearch": {
        "command": "/path/to/menusearch",
        "args": ["mcp"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().String("http", "", "listen address for HTTP mode (empty = use stdio)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	addr, err := cmd.Flags().GetString("http")
	if err != nil {
		return fmt.Errorf("getting http flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search:     services.Search,
		Navigation: services.Navigation,
		Detail:     services.Detail,
	})
	if err != nil {
		return err
	}
	defer services.Search.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if w := services.Watcher; w != nil {
		go func() {
			err := w.Watch(ctx, func() {
				if err := server.Reload(ctx); err != nil {
					log.Warn("reload failed, keeping the previous index: %v", err)
				}
			})
			if err != nil && ctx.Err() == nil {
				log.Warn("catalog watch stopped: %v", err)
			}
		}()
	}

	if addr != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}
	return server.Run(ctx)
}
