// ABOUTME: Data model for generated placeholder text
// ABOUTME: Defines sentences, paragraphs and the generation envelope
package models

import "strings"

const (
	// MinSeedWords is the smallest vocabulary accepted for generation
	MinSeedWords = 5

	// MinParagraphWords and MaxParagraphWords bound the words in one paragraph
	MinParagraphWords = 50
	MaxParagraphWords = 100
)

// Sentence is a run of punctuated word tokens
type Sentence struct {
	Tokens []string `json:"tokens"`
}

// String joins the tokens with single spaces
func (s Sentence) String() string {
	return strings.Join(s.Tokens, " ")
}

// Len returns the number of tokens in the sentence
func (s Sentence) Len() int {
	return len(s.Tokens)
}

// Paragraph is an ordered list of punctuated sentences
type Paragraph struct {
	Sentences []Sentence `json:"sentences"`
}

// String joins the sentences with single spaces
func (p Paragraph) String() string {
	parts := make([]string, len(p.Sentences))
	for i, s := range p.Sentences {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// WordCount counts tokens across all sentences
func (p Paragraph) WordCount() int {
	n := 0
	for _, s := range p.Sentences {
		n += s.Len()
	}
	return n
}
