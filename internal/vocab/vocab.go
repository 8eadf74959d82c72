// ABOUTME: Seed vocabulary parsing, loading and validation
// ABOUTME: Turns free text, CLI args and files into trimmed word lists
package vocab

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sophiekoonin/anything-ipsum/internal/core"
	"github.com/sophiekoonin/anything-ipsum/internal/models"
)

// Parse splits text into one seed word per line, trimming whitespace
// and dropping blank lines
func Parse(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		if w := strings.TrimSpace(line); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Clean trims each word and drops empty entries
func Clean(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// ParseArgs turns CLI arguments into seed words. Each argument may hold
// several comma-separated words.
func ParseArgs(args []string) []string {
	words := make([]string, 0, len(args))
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if w := strings.TrimSpace(part); w != "" {
				words = append(words, w)
			}
		}
	}
	return words
}

// Load reads a newline-separated vocabulary from path. "-" reads stdin.
func Load(path string, stdin io.Reader) ([]string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary: %w", err)
	}
	return Parse(string(data)), nil
}

// Validate checks the minimum vocabulary size
func Validate(words []string) error {
	if len(words) < models.MinSeedWords {
		return fmt.Errorf("%w (got %d)", core.ErrInsufficientVocabulary, len(words))
	}
	return nil
}
