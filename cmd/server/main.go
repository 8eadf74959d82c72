// ABOUTME: Main entry point for the ipsum MCP server with stdio transport
// ABOUTME: Loads config, builds the generator and serves MCP tools
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/sophiekoonin/anything-ipsum/internal/config"
	"github.com/sophiekoonin/anything-ipsum/internal/mcp"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (using environment only): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	server := mcpserver.NewMCPServer(
		"Anything Ipsum",
		"0.1.0",
	)

	mcp.RegisterTools(server, cfg, log.New(os.Stderr, "ipsum: ", log.LstdFlags))

	log.Println("Anything Ipsum MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
