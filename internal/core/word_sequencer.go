// ABOUTME: WordSequencer samples a flat word run from the seed vocabulary
// ABOUTME: Anchors the first two words and avoids adjacent repeats with bounded retries
package core

import (
	"fmt"
	"io"
	"log"

	"github.com/sophiekoonin/anything-ipsum/internal/util"
)

// WordSequencer builds word sequences for one paragraph
type WordSequencer struct {
	rv         *RandomVariate
	maxRetries int
	logger     *log.Logger
}

// NewWordSequencer creates a WordSequencer. maxRetries caps rejected draws per slot.
func NewWordSequencer(rv *RandomVariate, maxRetries int, logger *log.Logger) *WordSequencer {
	if maxRetries <= 0 {
		maxRetries = util.DefaultMaxRetries
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &WordSequencer{rv: rv, maxRetries: maxRetries, logger: logger}
}

// BuildSequence returns exactly target words sampled from seed.
// Positions 0 and 1 are always seed[0] and seed[1].
func (ws *WordSequencer) BuildSequence(seed []string, target int) ([]string, error) {
	if len(seed) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientVocabulary, len(seed))
	}
	if target < 2 {
		target = 2
	}

	words := make([]string, 2, target)
	words[0], words[1] = seed[0], seed[1]

	for len(words) < target {
		previous := words[len(words)-1]
		var candidate string
		attempts, ok := util.RetryUntil(ws.maxRetries, func(int) bool {
			candidate = seed[ws.rv.Index(len(seed))]
			return candidate != previous
		})
		if !ok {
			ws.logger.Printf("word sequencer: gave up after %d draws repeating %q at slot %d", attempts, previous, len(words))
			return nil, fmt.Errorf("%w: %q repeated %d times at slot %d", ErrDegenerateVocabulary, previous, attempts, len(words))
		}
		words = append(words, candidate)
	}

	return words, nil
}
