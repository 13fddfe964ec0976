package webhook

import (
	"fmt"
	"time"
)

// Backoff returns how long to wait after the failedCount-th failed attempt
// before trying again.
type Backoff func(failedCount int) time.Duration

// FixedBackoff waits d after every failure.
func FixedBackoff(d time.Duration) Backoff {
	return func(int) time.Duration {
		return d
	}
}

// ExponentialBackoff waits base after the first failure and doubles the
// wait after each further failure, up to maxDelay.
func ExponentialBackoff(base, maxDelay time.Duration) Backoff {
	return func(failedCount int) time.Duration {
		if failedCount < 1 {
			return 0
		}

		d := base
		for i := 1; i < failedCount; i++ {
			d *= 2
			if d >= maxDelay || d <= 0 {
				return maxDelay
			}
		}

		return min(d, maxDelay)
	}
}

// ParseBackoff builds a Backoff from its configuration name: "none",
// "fixed" or "exponential".
func ParseBackoff(name string, base, maxDelay time.Duration) (Backoff, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "fixed":
		return FixedBackoff(base), nil
	case "exponential":
		return ExponentialBackoff(base, maxDelay), nil
	default:
		return nil, fmt.Errorf("unknown backoff %q", name)
	}
}
