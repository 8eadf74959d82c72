// ABOUTME: Version command reports the build and generator defaults
// ABOUTME: Prints build info, built-in vocabularies and seed behaviour as text or JSON
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sophiekoonin/anything-ipsum/internal/core"
	"github.com/sophiekoonin/anything-ipsum/internal/render"
	"github.com/sophiekoonin/anything-ipsum/internal/vocab"
)

var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
}

// VersionInfo contains build information
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// SetVersion sets the version information (called from main)
func SetVersion(version, commit, date string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.Date = date
}

// versionReport is the --format json shape of the version command
type versionReport struct {
	VersionInfo
	Vocabularies []string `json:"vocabularies"`
	MaxSeed      uint64   `json:"max_seed"`
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version and generator defaults",
		Long: `Display the build of the Anything Ipsum CLI together with its
built-in vocabularies and the range of generated seeds.

Use --format json for machine-readable output.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}

	return cmd
}

func runVersion(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	report := versionReport{
		VersionInfo:  versionInfo,
		Vocabularies: vocab.Names(),
		MaxSeed:      core.MaxSeed,
	}

	if format == render.FormatJSON {
		return writeJSON(cmd, report)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Anything Ipsum %s (commit %s, built %s)\n", report.Version, report.Commit, report.Date)
	fmt.Fprintf(out, "Vocabularies: %s\n", strings.Join(report.Vocabularies, ", "))
	fmt.Fprintf(out, "Seeds: 0 picks a random seed in 1-%d\n", report.MaxSeed)
	return nil
}
