// ABOUTME: MCP tool handler implementations for the ipsum server
// ABOUTME: Validates arguments, runs the generator and returns JSON results
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sophiekoonin/anything-ipsum/internal/config"
	"github.com/sophiekoonin/anything-ipsum/internal/core"
	"github.com/sophiekoonin/anything-ipsum/internal/models"
	"github.com/sophiekoonin/anything-ipsum/internal/vocab"
)

// maxParagraphs caps a single generate_ipsum call
const maxParagraphs = 100

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	cfg    *config.Config
	logger *log.Logger
	mu     sync.Mutex // guards seeds
	seeds  *rand.Rand
}

// NewHandlers creates handlers. Each generate_ipsum call runs on its own
// service; a configured seed makes the sequence of per-call seeds repeatable.
func NewHandlers(cfg *config.Config, logger *log.Logger) *Handlers {
	if cfg == nil {
		cfg = &config.Config{Paragraphs: 1, VocabularySize: vocab.DefaultSize}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	base := cfg.Seed
	if base == 0 {
		base = core.NewSeed()
	}
	return &Handlers{
		cfg:    cfg,
		logger: logger,
		seeds:  rand.New(rand.NewPCG(base, base)),
	}
}

// nextSeed draws the seed for a call that did not supply one
func (h *Handlers) nextSeed() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return core.SeedFrom(h.seeds.Uint64())
}

// GenerateIpsum handles the generate_ipsum tool
func (h *Handlers) GenerateIpsum(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := h.parseGenerateRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	words := req.Words
	if len(words) == 0 {
		if req.Vocabulary == "" {
			return mcp.NewToolResultError("words argument is required unless a vocabulary is given"), nil
		}
		builtin, err := vocab.Builtin(req.Vocabulary, h.cfg.VocabularySize, req.Seed)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		words = builtin
	}

	if err := vocab.Validate(words); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if req.Paragraphs > maxParagraphs {
		return mcp.NewToolResultError(fmt.Sprintf("paragraphs must be at most %d, got %d", maxParagraphs, req.Paragraphs)), nil
	}

	paragraphs, err := h.generate(words, req.Paragraphs, req.Seed)
	if err != nil {
		log.Printf("Warning: generation failed: %v", err)
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	result := models.NewGenerationResult(req.Seed, paragraphs)
	responseJSON, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// parseGenerateRequest reads generate_ipsum arguments, applying config
// defaults and drawing a seed when none is given
func (h *Handlers) parseGenerateRequest(request mcp.CallToolRequest) (models.GenerationRequest, error) {
	req := models.GenerationRequest{
		Vocabulary: request.GetString("vocabulary", h.cfg.Vocabulary),
		Paragraphs: request.GetInt("paragraphs", h.cfg.Paragraphs),
	}

	args, _ := request.Params.Arguments.(map[string]any)
	if args != nil {
		req.Words = vocab.Clean(extractStringArray(args, "words"))
	}

	seed, err := parseSeed(args["seed"])
	if err != nil {
		return req, err
	}
	if seed == 0 {
		seed = h.nextSeed()
	}
	req.Seed = seed

	// Missing or invalid counts fall back to a single paragraph
	if req.Paragraphs < 1 {
		req.Paragraphs = 1
	}

	return req, nil
}

// parseSeed accepts a seed as a JSON number or a decimal string.
// Missing or non-positive values return 0.
func parseSeed(val any) (uint64, error) {
	switch v := val.(type) {
	case nil:
		return 0, nil
	case float64:
		if v <= 0 {
			return 0, nil
		}
		if v > core.MaxSeed {
			return 0, fmt.Errorf("seed %.0f is too large for a JSON number; pass it as a string", v)
		}
		return uint64(v), nil
	case string:
		if v == "" {
			return 0, nil
		}
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid seed %q: %w", v, err)
		}
		return seed, nil
	default:
		return 0, fmt.Errorf("seed must be a number or a string, got %T", val)
	}
}

// generate runs one call on a fresh service so the seed replays its output
func (h *Handlers) generate(words []string, count int, seed uint64) ([]string, error) {
	svc := core.NewIpsumService(
		core.WithSeed(seed),
		core.WithMaxRetries(h.cfg.MaxRetries),
		core.WithLogger(h.logger),
	)
	return svc.GenerateN(words, count)
}

// ListVocabularies handles the list_vocabularies tool
func (h *Handlers) ListVocabularies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	response := map[string]interface{}{
		"vocabularies": vocab.Names(),
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// SampleVocabulary handles the sample_vocabulary tool
func (h *Handlers) SampleVocabulary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name argument is required and must be a string"), nil
	}

	count := request.GetInt("count", h.cfg.VocabularySize)
	if count < 1 || count > vocab.MaxSize {
		return mcp.NewToolResultError(fmt.Sprintf("count must be 1-%d, got %d", vocab.MaxSize, count)), nil
	}
	words, err := vocab.Builtin(name, count, 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := map[string]interface{}{
		"name":  name,
		"words": words,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// extractStringArray extracts a string array from an arguments map
func extractStringArray(args map[string]interface{}, key string) []string {
	if val, ok := args[key]; ok {
		if arr, ok := val.([]interface{}); ok {
			result := make([]string, 0, len(arr))
			for _, item := range arr {
				if str, ok := item.(string); ok {
					result = append(result, str)
				}
			}
			return result
		}
	}
	return []string{}
}
