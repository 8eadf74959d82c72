// ABOUTME: CLI command to generate placeholder paragraphs
// ABOUTME: Collects seed words from args, files, stdin or built-in vocabularies
package commands

import (
	"fmt"
	"io"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sophiekoonin/anything-ipsum/internal/config"
	"github.com/sophiekoonin/anything-ipsum/internal/core"
	"github.com/sophiekoonin/anything-ipsum/internal/models"
	"github.com/sophiekoonin/anything-ipsum/internal/render"
	"github.com/sophiekoonin/anything-ipsum/internal/vocab"
)

var (
	genParagraphs int
	genFile       string
	genVocab      string
	genSeed       uint64
	genMaxRetries int
)

// NewGenerateCmd creates generate command
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [words...]",
		Short: "Generate placeholder paragraphs",
		Long: `Generate placeholder paragraphs from seed words.

At least 5 seed words are required. Words come from the arguments
(space or comma separated), from --file (one word per line), from a
built-in vocabulary with --vocab, or from stdin, one word per line.

Each paragraph holds 50 to 100 words and starts with the first two
seed words. Paragraphs are separated by a blank line.

Examples:
  ipsum generate cat dog fish bird hamster
  ipsum generate cat,dog,fish,bird,hamster -n 3
  ipsum generate --file words.txt --seed 42
  ipsum generate --vocab fake --format json
  cat words.txt | ipsum generate`,
		RunE: runGenerate,
	}

	cmd.Flags().IntVarP(&genParagraphs, "paragraphs", "n", 0, "Number of paragraphs (default from IPSUM_PARAGRAPHS, else 1)")
	cmd.Flags().StringVar(&genFile, "file", "", "Read seed words from file (- for stdin)")
	cmd.Flags().StringVar(&genVocab, "vocab", "", "Use a built-in vocabulary (lorem, fake)")
	cmd.Flags().Uint64Var(&genSeed, "seed", 0, "Random seed for reproducible output (0 = random)")
	cmd.Flags().IntVar(&genMaxRetries, "max-retries", 0, "Max redraws per word to avoid repeats (default from IPSUM_MAX_RETRIES)")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Load .env for defaults
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	format, err := resolveFormat(outputFormat, cfg.Format)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if genSeed != 0 {
		seed = genSeed
	}

	words, err := collectSeedWords(cmd.InOrStdin(), args, cfg, seed)
	if err != nil {
		return err
	}
	if err := vocab.Validate(words); err != nil {
		return err
	}

	maxRetries := cfg.MaxRetries
	if genMaxRetries > 0 {
		maxRetries = genMaxRetries
	}

	logger := log.New(io.Discard, "", 0)
	if verbose {
		logger = log.New(cmd.ErrOrStderr(), "ipsum: ", 0)
	}

	svc := core.NewIpsumService(
		core.WithSeed(seed),
		core.WithMaxRetries(maxRetries),
		core.WithLogger(logger),
	)

	count := resolveParagraphs(genParagraphs, cfg.Paragraphs)
	paragraphs, err := svc.GenerateN(words, count)
	if err != nil {
		return fmt.Errorf("generating text: %w", err)
	}

	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Seed: %d (%d seed words)\n", svc.Seed(), len(words))
	}

	return render.Write(cmd.OutOrStdout(), format, models.NewGenerationResult(svc.Seed(), paragraphs))
}

// collectSeedWords picks the first available word source: args, --file, --vocab, then stdin
func collectSeedWords(stdin io.Reader, args []string, cfg *config.Config, seed uint64) ([]string, error) {
	if len(args) > 0 {
		return vocab.ParseArgs(args), nil
	}

	if genFile != "" {
		return vocab.Load(genFile, stdin)
	}

	name := genVocab
	if name == "" {
		name = cfg.Vocabulary
	}
	if name != "" {
		return vocab.Builtin(name, cfg.VocabularySize, seed)
	}

	return vocab.Load("-", stdin)
}
