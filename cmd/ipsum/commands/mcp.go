// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Lets LLM agents like Claude generate placeholder text via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/sophiekoonin/anything-ipsum/internal/config"
	"github.com/sophiekoonin/anything-ipsum/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs Anything Ipsum as an MCP (Model Context Protocol) server, so
LLM agents like Claude can generate placeholder text via stdio.

Tools: generate_ipsum, list_vocabularies, sample_vocabulary.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by Claude Desktop)
  ipsum mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "ipsum": {
  #       "command": "ipsum",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (using environment only): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	server := mcpserver.NewMCPServer(
		"Anything Ipsum",
		versionInfo.Version,
	)
	mcp.RegisterTools(server, cfg, log.New(os.Stderr, "ipsum: ", log.LstdFlags))

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("Anything Ipsum MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, shutting down")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
