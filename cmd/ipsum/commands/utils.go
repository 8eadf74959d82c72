// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Resolves flag-versus-config values and validates counts
package commands

import (
	"fmt"

	"github.com/sophiekoonin/anything-ipsum/internal/render"
)

// resolveParagraphs prefers the flag, then config, and falls back to 1
func resolveParagraphs(flagVal, configVal int) int {
	if flagVal > 0 {
		return flagVal
	}
	if configVal > 0 {
		return configVal
	}
	return 1
}

// resolveFormat prefers an explicit --format over the configured one
func resolveFormat(flagVal, configVal string) (render.Format, error) {
	if flagVal != "" && flagVal != "auto" {
		return render.ParseFormat(flagVal)
	}
	return render.ParseFormat(configVal)
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
