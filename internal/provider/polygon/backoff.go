package polygon

import "time"

// Backoff returns the delay before retrying attempt (0-based):
// min(initial * 2^attempt, max).
func Backoff(initial, max time.Duration, attempt int) time.Duration {
	if initial <= 0 {
		return 0
	}
	if attempt < 0 {
		attempt = 0
	}
	// 2^attempt saturates long before the shift could overflow
	if attempt > 62 || initial > max>>uint(attempt) {
		return max
	}
	d := initial << uint(attempt)
	if d > max {
		return max
	}
	return d
}
