// ABOUTME: Built-in seed vocabularies backed by word generators
// ABOUTME: "lorem" uses go-loremipsum, "fake" uses gofakeit
package vocab

import (
	"errors"
	"fmt"
	"sort"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-loremipsum/loremipsum"
)

// DefaultSize is the number of words drawn for a built-in vocabulary
const DefaultSize = 40

// MaxSize caps the number of words drawn from a built-in vocabulary
const MaxSize = 1000

// ErrUnknownVocabulary is returned for names not in Names()
var ErrUnknownVocabulary = errors.New("unknown vocabulary")

// wordFunc returns the next candidate word for a built-in vocabulary
type wordFunc func() string

var builtins = map[string]func(seed uint64) wordFunc{
	"lorem": func(seed uint64) wordFunc {
		var li *loremipsum.LoremIpsum
		if seed == 0 {
			li = loremipsum.New()
		} else {
			li = loremipsum.NewWithSeed(int64(seed))
		}
		return li.Word
	},
	"fake": func(seed uint64) wordFunc {
		return gofakeit.New(seed).Word
	},
}

// Names lists the built-in vocabularies in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin draws up to size distinct words from the named vocabulary.
// Sizes above MaxSize are clamped. A zero seed gives a different list on
// every call.
func Builtin(name string, size int, seed uint64) ([]string, error) {
	factory, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownVocabulary, name, Names())
	}
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	next := factory(seed)
	seen := make(map[string]bool, size)
	words := make([]string, 0, size)

	// Small source lists can run out of new words; stop after a fixed budget.
	for draws := 0; len(words) < size && draws < size*20; draws++ {
		w := next()
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}

	return words, nil
}
