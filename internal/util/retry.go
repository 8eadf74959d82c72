// ABOUTME: Bounded retry helper for sampling loops
// ABOUTME: Replaces open-ended "redo this slot" loops with a capped attempt count
package util

// DefaultMaxRetries caps rejected draws for a single slot
const DefaultMaxRetries = 100

// RetryUntil calls try until it reports success or maxAttempts calls have
// been made. It returns the number of calls and whether one succeeded.
// A non-positive maxAttempts still allows a single call.
func RetryUntil(maxAttempts int, try func(attempt int) bool) (int, bool) {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if try(attempt) {
			return attempt, true
		}
	}
	return maxAttempts, false
}
