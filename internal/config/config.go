// ABOUTME: Centralized configuration for the ipsum generator
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sophiekoonin/anything-ipsum/internal/render"
	"github.com/sophiekoonin/anything-ipsum/internal/util"
	"github.com/sophiekoonin/anything-ipsum/internal/vocab"
)

// Config holds all configuration for the generator
type Config struct {
	// Generation settings
	Paragraphs int
	Seed       uint64
	MaxRetries int

	// Output settings
	Format string

	// Vocabulary settings
	Vocabulary     string
	VocabularySize int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		Paragraphs:     getEnvInt("IPSUM_PARAGRAPHS", 1),
		Seed:           getEnvUint("IPSUM_SEED", 0),
		MaxRetries:     getEnvInt("IPSUM_MAX_RETRIES", util.DefaultMaxRetries),
		Format:         getEnv("IPSUM_FORMAT", "text"),
		Vocabulary:     getEnv("IPSUM_VOCAB", ""),
		VocabularySize: getEnvInt("IPSUM_VOCAB_SIZE", vocab.DefaultSize),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Paragraphs < 1 || c.Paragraphs > 100 {
		return fmt.Errorf("IPSUM_PARAGRAPHS must be 1-100, got %d", c.Paragraphs)
	}
	if c.MaxRetries < 1 || c.MaxRetries > 10000 {
		return fmt.Errorf("IPSUM_MAX_RETRIES must be 1-10000, got %d", c.MaxRetries)
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("IPSUM_FORMAT: %w", err)
	}
	if c.VocabularySize < 5 || c.VocabularySize > vocab.MaxSize {
		return fmt.Errorf("IPSUM_VOCAB_SIZE must be 5-%d, got %d", vocab.MaxSize, c.VocabularySize)
	}
	if c.Vocabulary != "" && !containsString(vocab.Names(), c.Vocabulary) {
		return fmt.Errorf("IPSUM_VOCAB must be one of %v, got %q", vocab.Names(), c.Vocabulary)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvUint(key string, defaultVal uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			return u
		}
	}
	return defaultVal
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
