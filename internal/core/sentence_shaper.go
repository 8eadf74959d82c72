// ABOUTME: SentenceShaper decides sentence lengths and comma placement
// ABOUTME: Punctuates word runs into capitalized, period-terminated sentences
package core

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sophiekoonin/anything-ipsum/internal/models"
)

const (
	// AverageSentenceLength is the mean English sentence length in words
	AverageSentenceLength = 24.46

	// SentenceLengthStdDev is the standard deviation of English sentence length
	SentenceLengthStdDev = 5.08

	// CommaBase is the log base used for the comma count model
	CommaBase = 6

	// MinPunctuatedLength is the shortest sentence that gets commas and capitalization
	MinPunctuatedLength = 4
)

// SentenceShaper models sentence length and comma count
type SentenceShaper struct {
	rv *RandomVariate
}

// NewSentenceShaper creates a SentenceShaper drawing from rv
func NewSentenceShaper(rv *RandomVariate) *SentenceShaper {
	return &SentenceShaper{rv: rv}
}

// SentenceLength draws a target word count for one sentence.
// Tail draws can be zero or negative; callers clamp.
func (ss *SentenceShaper) SentenceLength() int {
	return ss.rv.GaussianRound(AverageSentenceLength, SentenceLengthStdDev)
}

// CommaCount draws how many commas a sentence of n words gets.
// Grows with log base 6 of n and may be negative for tiny n.
func (ss *SentenceShaper) CommaCount(n int) int {
	average := math.Log(float64(n)) / math.Log(CommaBase)
	stddev := average / CommaBase
	return roundHalfUp(ss.rv.GaussianSample()*stddev + average)
}

// Punctuate returns a new sentence built from words with a trailing period,
// commas at evenly spaced interior positions, and a capitalized first word.
// Sentences shorter than MinPunctuatedLength only get the period.
func (ss *SentenceShaper) Punctuate(words []string) models.Sentence {
	n := len(words)
	if n == 0 {
		return models.Sentence{Tokens: []string{}}
	}

	tokens := make([]string, n)
	copy(tokens, words)
	tokens[n-1] += "."

	// Short sentences keep their original casing.
	if n < MinPunctuatedLength {
		return models.Sentence{Tokens: tokens}
	}

	commas := ss.CommaCount(n)
	for i := 0; i <= commas; i++ {
		position := roundHalfUp(float64(i*n) / float64(commas+1))
		if position > 0 && position < n-1 {
			tokens[position] += ","
		}
	}

	tokens[0] = capitalize(tokens[0])
	return models.Sentence{Tokens: tokens}
}

// capitalize upper-cases the first rune of s
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(s[size:])
	return b.String()
}
