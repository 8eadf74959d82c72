// ABOUTME: Request and result envelopes for paragraph generation
// ABOUTME: Shared by JSON output, MCP tools and the shape benchmark
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerationRequest describes one call into the generator
type GenerationRequest struct {
	Words      []string `json:"words"`
	Vocabulary string   `json:"vocabulary,omitempty"`
	Paragraphs int      `json:"paragraphs"`
	Seed       uint64   `json:"seed,omitempty"`
}

// GenerationResult is the output of a GenerationRequest
type GenerationResult struct {
	ID         string    `json:"id"`
	Seed       uint64    `json:"seed"`
	Paragraphs []string  `json:"paragraphs"`
	WordCount  int       `json:"word_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewGenerationResult wraps generated paragraphs with an ID and word count
func NewGenerationResult(seed uint64, paragraphs []string) *GenerationResult {
	total := 0
	for _, p := range paragraphs {
		total += countWords(p)
	}
	if paragraphs == nil {
		paragraphs = []string{}
	}
	return &GenerationResult{
		ID:         GenerateResultID(),
		Seed:       seed,
		Paragraphs: paragraphs,
		WordCount:  total,
		CreatedAt:  time.Now(),
	}
}

// GenerateResultID creates a unique identifier for a generation result
func GenerateResultID() string {
	return fmt.Sprintf("ipsum_%s", uuid.New().String()[:8])
}

func countWords(s string) int {
	return len(strings.Fields(s))
}
