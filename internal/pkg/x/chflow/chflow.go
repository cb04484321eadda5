// Package chflow wraps channel sends and receives in context-aware selects,
// so pipeline stages never block past a cancellation or deadline.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to end. The boolean reports
// whether a value was actually received; it is false on cancellation and on a
// closed channel.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data to ch unless ctx ends first, reporting whether the send
// happened.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// FirstNonNil returns the first usable channel of the given ones, or nil when
// every candidate is nil. It lets a stage pick an output among optional
// destinations.
func FirstNonNil[T any](channels ...chan T) chan T {
	for _, ch := range channels {
		if ch != nil {
			return ch
		}
	}

	return nil
}
