// ABOUTME: ParagraphComposer assembles one paragraph from seed words
// ABOUTME: Partitions a word sequence into sentences and punctuates each
package core

import (
	"fmt"

	"github.com/sophiekoonin/anything-ipsum/internal/models"
)

// ParagraphComposer drives the sequencer and shaper for a single paragraph
type ParagraphComposer struct {
	rv        *RandomVariate
	sequencer *WordSequencer
	shaper    *SentenceShaper
}

// NewParagraphComposer creates a ParagraphComposer
func NewParagraphComposer(rv *RandomVariate, sequencer *WordSequencer, shaper *SentenceShaper) *ParagraphComposer {
	return &ParagraphComposer{rv: rv, sequencer: sequencer, shaper: shaper}
}

// Compose builds a paragraph of 50 to 100 words from seed
func (pc *ParagraphComposer) Compose(seed []string) (models.Paragraph, error) {
	if len(seed) < models.MinSeedWords {
		return models.Paragraph{}, fmt.Errorf("%w: got %d", ErrInsufficientVocabulary, len(seed))
	}

	target := pc.rv.IntRange(models.MinParagraphWords, models.MaxParagraphWords)

	words, err := pc.sequencer.BuildSequence(seed, target)
	if err != nil {
		return models.Paragraph{}, fmt.Errorf("building word sequence: %w", err)
	}

	var sentences []models.Sentence
	for _, run := range pc.partition(words) {
		sentences = append(sentences, pc.shaper.Punctuate(run))
	}

	return models.Paragraph{Sentences: sentences}, nil
}

func (pc *ParagraphComposer) partition(words []string) [][]string {
	return partitionRuns(words, pc.shaper.SentenceLength)
}

// partitionRuns splits words into sentence-sized runs. A run that would leave
// fewer than MinPunctuatedLength words behind absorbs the remainder.
// Non-positive lengths from the draw are treated as 1.
func partitionRuns(words []string, sentenceLength func() int) [][]string {
	var runs [][]string
	remaining := len(words)
	current := 0

	for remaining > 0 {
		length := sentenceLength()
		if length < 1 {
			length = 1
		}
		if remaining-length < MinPunctuatedLength {
			length = remaining
		}

		runs = append(runs, words[current:current+length])
		current += length
		remaining -= length
	}

	return runs
}
