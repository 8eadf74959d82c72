// ABOUTME: Tests for MCP tool handlers
// ABOUTME: Exercises generation, vocabulary listing and argument validation
package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sophiekoonin/anything-ipsum/internal/config"
	"github.com/sophiekoonin/anything-ipsum/internal/core"
	"github.com/sophiekoonin/anything-ipsum/internal/models"
)

func newRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func testHandlers() *Handlers {
	cfg := &config.Config{Paragraphs: 1, Seed: 10, MaxRetries: 100, Format: "text", VocabularySize: 20}
	return NewHandlers(cfg, nil)
}

func greekArgs() []any {
	return []any{"alpha", "beta", "gamma", "delta", "epsilon"}
}

func TestGenerateIpsum_Words(t *testing.T) {
	h := testHandlers()

	result, err := h.GenerateIpsum(context.Background(), newRequest("generate_ipsum", map[string]any{
		"words":      greekArgs(),
		"paragraphs": float64(3),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, resultText(t, result))

	var out models.GenerationResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Len(t, out.Paragraphs, 3)
	assert.NotZero(t, out.Seed)
	assert.LessOrEqual(t, out.Seed, uint64(core.MaxSeed))
	assert.True(t, strings.HasPrefix(out.ID, "ipsum_"))
	for _, p := range out.Paragraphs {
		assert.True(t, strings.HasPrefix(p, "Alpha beta"))
	}
}

func TestGenerateIpsum_SeedIsReproducible(t *testing.T) {
	h := testHandlers()
	args := map[string]any{"words": greekArgs(), "seed": float64(1234)}

	first, err := h.GenerateIpsum(context.Background(), newRequest("generate_ipsum", args))
	require.NoError(t, err)
	second, err := h.GenerateIpsum(context.Background(), newRequest("generate_ipsum", args))
	require.NoError(t, err)

	var a, b models.GenerationResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, first)), &a))
	require.NoError(t, json.Unmarshal([]byte(resultText(t, second)), &b))
	assert.Equal(t, a.Paragraphs, b.Paragraphs)
	assert.Equal(t, uint64(1234), a.Seed)
}

func generateResult(t *testing.T, h *Handlers, args map[string]any) models.GenerationResult {
	t.Helper()
	result, err := h.GenerateIpsum(context.Background(), newRequest("generate_ipsum", args))
	require.NoError(t, err)
	require.False(t, result.IsError, resultText(t, result))

	var out models.GenerationResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	return out
}

func TestGenerateIpsum_ReportedSeedReplays(t *testing.T) {
	h := testHandlers()

	first := generateResult(t, h, map[string]any{"words": greekArgs(), "paragraphs": float64(2)})
	second := generateResult(t, h, map[string]any{"words": greekArgs(), "paragraphs": float64(2)})
	assert.NotEqual(t, first.Seed, second.Seed)

	replay := generateResult(t, h, map[string]any{
		"words":      greekArgs(),
		"paragraphs": float64(2),
		"seed":       float64(second.Seed),
	})
	assert.Equal(t, second.Seed, replay.Seed)
	assert.Equal(t, second.Paragraphs, replay.Paragraphs)

	replayFirst := generateResult(t, h, map[string]any{
		"words":      greekArgs(),
		"paragraphs": float64(2),
		"seed":       float64(first.Seed),
	})
	assert.Equal(t, first.Paragraphs, replayFirst.Paragraphs)
}

func TestGenerateIpsum_ConfiguredSeedIsRepeatable(t *testing.T) {
	args := map[string]any{"words": greekArgs()}

	a := generateResult(t, testHandlers(), args)
	b := generateResult(t, testHandlers(), args)
	assert.Equal(t, a.Seed, b.Seed)
	assert.Equal(t, a.Paragraphs, b.Paragraphs)
}

func TestGenerateIpsum_StringSeed(t *testing.T) {
	h := testHandlers()
	args := map[string]any{"words": greekArgs(), "seed": "9007199254740993"}

	a := generateResult(t, h, args)
	b := generateResult(t, h, args)
	assert.Equal(t, uint64(9007199254740993), a.Seed)
	assert.Equal(t, a.Paragraphs, b.Paragraphs)
}

func TestGenerateIpsum_Vocabulary(t *testing.T) {
	h := testHandlers()

	result, err := h.GenerateIpsum(context.Background(), newRequest("generate_ipsum", map[string]any{
		"vocabulary": "fake",
		"seed":       float64(5),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, resultText(t, result))

	var out models.GenerationResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Len(t, out.Paragraphs, 1)
}

func TestGenerateIpsum_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		message string
	}{
		{"no words", map[string]any{}, "words argument is required"},
		{"too few words", map[string]any{"words": []any{"a", "b", "c", "d"}}, "5 or more words"},
		{"blank words dropped", map[string]any{"words": []any{"a", "b", " ", "", "c", "d"}}, "got 4"},
		{"unknown vocabulary", map[string]any{"vocabulary": "dwarvish"}, "unknown vocabulary"},
		{"too many paragraphs", map[string]any{"words": greekArgs(), "paragraphs": float64(101)}, "at most 100"},
		{"degenerate", map[string]any{"words": []any{"x", "x", "x", "x", "x"}}, "degenerate vocabulary"},
		{"seed too large for a number", map[string]any{"words": greekArgs(), "seed": float64(1 << 60)}, "pass it as a string"},
		{"seed not numeric", map[string]any{"words": greekArgs(), "seed": "abc"}, "invalid seed"},
		{"seed wrong type", map[string]any{"words": greekArgs(), "seed": true}, "number or a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testHandlers()
			result, err := h.GenerateIpsum(context.Background(), newRequest("generate_ipsum", tt.args))
			require.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.message)
		})
	}
}

func TestGenerateIpsum_ZeroParagraphsDefaultsToOne(t *testing.T) {
	h := testHandlers()

	result, err := h.GenerateIpsum(context.Background(), newRequest("generate_ipsum", map[string]any{
		"words":      greekArgs(),
		"paragraphs": float64(0),
	}))
	require.NoError(t, err)

	var out models.GenerationResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Len(t, out.Paragraphs, 1)
}

func TestListVocabularies(t *testing.T) {
	h := testHandlers()

	result, err := h.ListVocabularies(context.Background(), newRequest("list_vocabularies", nil))
	require.NoError(t, err)

	var out map[string][]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, []string{"fake", "lorem"}, out["vocabularies"])
}

func TestSampleVocabulary(t *testing.T) {
	h := testHandlers()

	result, err := h.SampleVocabulary(context.Background(), newRequest("sample_vocabulary", map[string]any{
		"name":  "fake",
		"count": float64(8),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var out struct {
		Name  string   `json:"name"`
		Words []string `json:"words"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, "fake", out.Name)
	assert.Len(t, out.Words, 8)
}

func TestSampleVocabulary_CountOutOfRange(t *testing.T) {
	for _, count := range []float64{0, -3, 1001, 1e9} {
		h := testHandlers()
		result, err := h.SampleVocabulary(context.Background(), newRequest("sample_vocabulary", map[string]any{
			"name":  "lorem",
			"count": count,
		}))
		require.NoError(t, err)
		assert.True(t, result.IsError, "count %v should be rejected", count)
		assert.Contains(t, resultText(t, result), "count must be 1-1000")
	}
}

func TestSampleVocabulary_MissingName(t *testing.T) {
	h := testHandlers()

	result, err := h.SampleVocabulary(context.Background(), newRequest("sample_vocabulary", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestNewHandlers_Defaults(t *testing.T) {
	h := NewHandlers(nil, nil)
	require.NotNil(t, h.cfg)
	require.NotNil(t, h.logger)
	require.NotNil(t, h.seeds)
	assert.NotZero(t, h.nextSeed())
	assert.Equal(t, 1, h.cfg.Paragraphs)
}

func TestRegisterTools(t *testing.T) {
	server := mcpserver.NewMCPServer("test", "0.0.0")
	h := RegisterTools(server, nil, nil)
	assert.NotNil(t, h)
}

func TestParseGenerateRequest(t *testing.T) {
	h := testHandlers()
	h.cfg.Paragraphs = 2
	h.cfg.Vocabulary = "lorem"

	req, err := h.parseGenerateRequest(newRequest("generate_ipsum", map[string]any{
		"words": []any{" one ", "two", ""},
		"seed":  float64(9),
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, req.Words)
	assert.Equal(t, uint64(9), req.Seed)
	assert.Equal(t, 2, req.Paragraphs)
	assert.Equal(t, "lorem", req.Vocabulary)

	req, err = h.parseGenerateRequest(newRequest("generate_ipsum", map[string]any{
		"paragraphs": float64(-1),
		"seed":       float64(-5),
		"vocabulary": "fake",
	}))
	require.NoError(t, err)
	assert.Empty(t, req.Words)
	assert.NotZero(t, req.Seed)
	assert.LessOrEqual(t, req.Seed, uint64(core.MaxSeed))
	assert.Equal(t, 1, req.Paragraphs)
	assert.Equal(t, "fake", req.Vocabulary)
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		name    string
		val     any
		want    uint64
		wantErr bool
	}{
		{"missing", nil, 0, false},
		{"number", float64(1234), 1234, false},
		{"negative number", float64(-1), 0, false},
		{"largest exact number", float64(core.MaxSeed), core.MaxSeed, false},
		{"number above 2^53", float64(1 << 54), 0, true},
		{"string", "18446744073709551615", 18446744073709551615, false},
		{"empty string", "", 0, false},
		{"bad string", "-7", 0, true},
		{"wrong type", []any{1}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSeed(tt.val)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractStringArray(t *testing.T) {
	args := map[string]any{
		"words": []any{"a", 1, "b", nil},
		"other": "c",
	}
	assert.Equal(t, []string{"a", "b"}, extractStringArray(args, "words"))
	assert.Equal(t, []string{}, extractStringArray(args, "other"))
	assert.Equal(t, []string{}, extractStringArray(args, "missing"))
}
