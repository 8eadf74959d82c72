// ABOUTME: IpsumService is the entry point for placeholder text generation
// ABOUTME: Wires the random source, sequencer, shaper and composer together
package core

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"

	"github.com/sophiekoonin/anything-ipsum/internal/models"
	"github.com/sophiekoonin/anything-ipsum/internal/util"
)

// MaxSeed is the largest generated seed. Seeds up to 2^53-1 survive a
// round trip through JSON numbers.
const MaxSeed = 1<<53 - 1

// NewSeed draws a random non-zero seed no larger than MaxSeed
func NewSeed() uint64 {
	return SeedFrom(rand.Uint64())
}

// SeedFrom folds a raw 64-bit value into a non-zero seed no larger than MaxSeed
func SeedFrom(raw uint64) uint64 {
	if seed := raw & MaxSeed; seed != 0 {
		return seed
	}
	return 1
}

// IpsumService generates paragraphs from seed words.
// It is not safe for concurrent use.
type IpsumService struct {
	seed       uint64
	source     RandomSource
	maxRetries int
	logger     *log.Logger

	composer *ParagraphComposer
}

// Option configures an IpsumService
type Option func(*IpsumService)

// WithSeed seeds a PCG source deterministically. Zero picks a random seed.
func WithSeed(seed uint64) Option {
	return func(s *IpsumService) {
		s.seed = seed
	}
}

// WithSource injects a custom uniform source. It takes precedence over WithSeed.
func WithSource(src RandomSource) Option {
	return func(s *IpsumService) {
		s.source = src
	}
}

// WithMaxRetries caps rejected draws per word slot
func WithMaxRetries(n int) Option {
	return func(s *IpsumService) {
		s.maxRetries = n
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(logger *log.Logger) Option {
	return func(s *IpsumService) {
		s.logger = logger
	}
}

// NewIpsumService creates a service from options
func NewIpsumService(opts ...Option) *IpsumService {
	s := &IpsumService{
		maxRetries: util.DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}

	if s.source == nil {
		if s.seed == 0 {
			s.seed = NewSeed()
		}
		s.source = rand.New(rand.NewPCG(s.seed, s.seed))
	} else {
		s.seed = 0
	}

	rv := NewRandomVariate(s.source)
	s.composer = NewParagraphComposer(
		rv,
		NewWordSequencer(rv, s.maxRetries, s.logger),
		NewSentenceShaper(rv),
	)

	return s
}

// Seed returns the seed of the built-in source, or 0 for an injected source
func (s *IpsumService) Seed() uint64 {
	return s.seed
}

// Compose returns one structured paragraph
func (s *IpsumService) Compose(seed []string) (models.Paragraph, error) {
	return s.composer.Compose(seed)
}

// Generate returns one paragraph as a string
func (s *IpsumService) Generate(seed []string) (string, error) {
	p, err := s.composer.Compose(seed)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}

// GenerateN returns n paragraphs. Non-positive n yields an empty slice.
func (s *IpsumService) GenerateN(seed []string, n int) ([]string, error) {
	if len(seed) < models.MinSeedWords {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientVocabulary, len(seed))
	}
	if n < 0 {
		n = 0
	}

	paragraphs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		p, err := s.Generate(seed)
		if err != nil {
			return nil, fmt.Errorf("generating paragraph %d: %w", i+1, err)
		}
		paragraphs = append(paragraphs, p)
	}

	s.logger.Printf("generated %d paragraph(s) from %d seed words", len(paragraphs), len(seed))
	return paragraphs, nil
}
