// ABOUTME: Tests for vocabulary parsing, loading and built-ins
// ABOUTME: Verifies trimming, file/stdin input and generator-backed lists
package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sophiekoonin/anything-ipsum/internal/core"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"one per line", "alpha\nbeta\ngamma", []string{"alpha", "beta", "gamma"}},
		{"trims whitespace", "  alpha \n\tbeta\t", []string{"alpha", "beta"}},
		{"drops blank lines", "alpha\n\n   \nbeta\n", []string{"alpha", "beta"}},
		{"windows newlines", "alpha\r\nbeta\r\n", []string{"alpha", "beta"}},
		{"keeps inner spaces", "ice cream\nhot dog", []string{"ice cream", "hot dog"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestClean(t *testing.T) {
	got := Clean([]string{" alpha ", "", "beta,gamma", "\t"})
	assert.Equal(t, []string{"alpha", "beta,gamma"}, got)
}

func TestParseArgs(t *testing.T) {
	got := ParseArgs([]string{"alpha", "beta,gamma", " delta , ", ",,"})
	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta"}, got)
	assert.Empty(t, ParseArgs(nil))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ndog\n\nfish\n"), 0o600))

	got, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "fish"}, got)
}

func TestLoad_Stdin(t *testing.T) {
	got, err := Load("-", strings.NewReader("one\ntwo\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, got)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading vocabulary")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate([]string{"a", "b", "c", "d", "e"}))

	err := Validate([]string{"a", "b", "c", "d"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInsufficientVocabulary))
	assert.Contains(t, err.Error(), "got 4")
	assert.Contains(t, err.Error(), "please enter 5 or more words")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"fake", "lorem"}, Names())
}

func TestBuiltin(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			got, err := Builtin(name, 10, 42)
			require.NoError(t, err)
			require.NotEmpty(t, got)
			assert.LessOrEqual(t, len(got), 10)

			seen := map[string]bool{}
			for _, w := range got {
				assert.NotEmpty(t, w)
				assert.False(t, seen[w], "duplicate word %q", w)
				seen[w] = true
			}
		})
	}
}

func TestBuiltin_FakeDeterministic(t *testing.T) {
	a, err := Builtin("fake", 15, 7)
	require.NoError(t, err)
	b, err := Builtin("fake", 15, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 15)
}

func TestBuiltin_DefaultSize(t *testing.T) {
	got, err := Builtin("fake", 0, 3)
	require.NoError(t, err)
	assert.Len(t, got, DefaultSize)
}

func TestBuiltin_ClampsOversizedRequests(t *testing.T) {
	got, err := Builtin("fake", 1_000_000_000, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), MaxSize)
}

func TestBuiltin_Unknown(t *testing.T) {
	_, err := Builtin("klingon", 10, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownVocabulary))
	assert.Contains(t, err.Error(), "lorem")
}
