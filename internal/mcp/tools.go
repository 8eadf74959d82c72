// ABOUTME: MCP tool definitions and registration for the ipsum server
// ABOUTME: Defines JSON schemas for the generation and vocabulary tools
package mcp

import (
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/sophiekoonin/anything-ipsum/internal/config"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, cfg *config.Config, logger *log.Logger) *Handlers {
	handlers := NewHandlers(cfg, logger)

	// 1. generate_ipsum - Generate placeholder paragraphs from seed words
	server.AddTool(mcp.Tool{
		Name:        "generate_ipsum",
		Description: "Generate placeholder paragraphs that read like natural sentences, built only from the given seed words (at least 5) or a built-in vocabulary.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"words": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Seed words to build the text from (at least 5). The first two open every paragraph.",
				},
				"vocabulary": map[string]interface{}{
					"type":        "string",
					"description": "Built-in vocabulary to use when no words are given (see list_vocabularies)",
				},
				"paragraphs": map[string]interface{}{
					"type":        "number",
					"description": "Number of paragraphs to generate (default: 1)",
					"default":     1,
				},
				"seed": map[string]interface{}{
					"type":        []string{"number", "string"},
					"description": "Optional random seed. Pass the seed from an earlier result to reproduce it; seeds above 2^53 must be strings.",
				},
			},
		},
	}, handlers.GenerateIpsum)

	// 2. list_vocabularies - List the built-in vocabularies
	server.AddTool(mcp.Tool{
		Name:        "list_vocabularies",
		Description: "List the names of built-in seed vocabularies.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListVocabularies)

	// 3. sample_vocabulary - Draw words from a built-in vocabulary
	server.AddTool(mcp.Tool{
		Name:        "sample_vocabulary",
		Description: "Draw distinct words from a built-in vocabulary, for use as seed words.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Vocabulary name",
				},
				"count": map[string]interface{}{
					"type":        "number",
					"description": "Number of words to draw, 1-1000 (default: 40)",
					"default":     40,
				},
			},
			Required: []string{"name"},
		},
	}, handlers.SampleVocabulary)

	return handlers
}
