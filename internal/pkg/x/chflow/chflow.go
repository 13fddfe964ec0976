// Package chflow holds context-aware channel helpers.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done. The boolean is
// false when ctx ended first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}
