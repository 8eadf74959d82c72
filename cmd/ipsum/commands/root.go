// ABOUTME: Root command and global flags for the ipsum CLI
// ABOUTME: Registers subcommands and shared verbose/quiet/format flags
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
 █████  ███    ██ ██    ██     ██ ██████  ███████ ██    ██ ███    ███
██   ██ ████   ██  ██  ██      ██ ██   ██ ██      ██    ██ ████  ████
███████ ██ ██  ██   ████       ██ ██████  ███████ ██    ██ ██ ████ ██
██   ██ ██  ██ ██    ██        ██ ██           ██ ██    ██ ██  ██  ██
██   ██ ██   ████    ██        ██ ██      ███████  ██████  ██      ██
`

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ipsum",
		Short: "Generate placeholder text from your own words",
		Long: banner + `
Anything Ipsum generates lorem-ipsum style placeholder paragraphs
from any set of seed words. Sentence lengths follow the average
English sentence, commas grow with sentence length, and every
paragraph opens with your first two words.

Examples:
  ipsum generate cat dog fish bird hamster
  ipsum generate --file words.txt -n 3
  ipsum generate --vocab lorem --format html
  ipsum mcp`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format (auto, text, html, json)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewGenerateCmd(),
		NewVocabCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
