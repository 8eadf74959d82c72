// ABOUTME: CLI command to list and print built-in vocabularies
// ABOUTME: Output can be piped back into generate as seed words
package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sophiekoonin/anything-ipsum/internal/render"
	"github.com/sophiekoonin/anything-ipsum/internal/vocab"
)

var (
	vocabSize int
	vocabSeed uint64
)

// NewVocabCmd creates vocab command
func NewVocabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab [name]",
		Short: "List or print built-in vocabularies",
		Long: `List built-in vocabularies, or print words from one of them.

Without a name, lists the available vocabularies. With a name, prints
distinct words from it, one per line, ready to feed back into generate.

Examples:
  ipsum vocab
  ipsum vocab lorem --size 20
  ipsum vocab fake --seed 7 | ipsum generate -n 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVocab,
	}

	cmd.Flags().IntVar(&vocabSize, "size", vocab.DefaultSize, "Number of words to print")
	cmd.Flags().Uint64Var(&vocabSeed, "seed", 0, "Random seed (0 = random)")

	return cmd
}

func runVocab(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		names := vocab.Names()
		if format == render.FormatJSON {
			return writeJSON(cmd, map[string]interface{}{"vocabularies": names})
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	if err := validatePositiveInt(vocabSize, "size"); err != nil {
		return err
	}

	words, err := vocab.Builtin(args[0], vocabSize, vocabSeed)
	if err != nil {
		return err
	}

	if format == render.FormatJSON {
		return writeJSON(cmd, map[string]interface{}{"name": args[0], "words": words})
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, "\n"))
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d word(s) from %s\n", len(words), args[0])
	}
	return nil
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
	return nil
}
