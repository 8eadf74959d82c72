// ABOUTME: Sentinel errors for the generation core
// ABOUTME: Callers match these with errors.Is
package core

import "errors"

var (
	// ErrInsufficientVocabulary means fewer seed words than models.MinSeedWords
	ErrInsufficientVocabulary = errors.New("insufficient vocabulary: please enter 5 or more words")

	// ErrDegenerateVocabulary means the sequencer could not avoid repeating a word
	ErrDegenerateVocabulary = errors.New("degenerate vocabulary: cannot avoid adjacent repeats")
)
