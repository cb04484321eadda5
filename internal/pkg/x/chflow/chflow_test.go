package chflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReceive(t *testing.T) {
	t.Run("should receive a buffered value", func(t *testing.T) {
		// Setup
		ch := make(chan int, 1)
		ch <- 42

		// Execute
		value, ok := Receive(t.Context(), ch)

		// Assert
		assert.True(t, ok)
		assert.Equal(t, 42, value)
	})

	t.Run("should give up when the context is already canceled", func(t *testing.T) {
		// Setup
		ch := make(chan int)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		// Execute
		value, ok := Receive(ctx, ch)

		// Assert
		assert.False(t, ok)
		assert.Zero(t, value)
	})

	t.Run("should report a closed channel as unsuccessful", func(t *testing.T) {
		// Setup
		ch := make(chan string)
		close(ch)

		// Execute
		value, ok := Receive(t.Context(), ch)

		// Assert
		assert.False(t, ok)
		assert.Empty(t, value)
	})
}

func TestSend(t *testing.T) {
	t.Run("should deliver to a ready channel", func(t *testing.T) {
		// Setup
		ch := make(chan int, 1)

		// Execute
		ok := Send(t.Context(), ch, 42)

		// Assert
		assert.True(t, ok)
		assert.Equal(t, 42, <-ch)
	})

	t.Run("should give up when the context is already canceled", func(t *testing.T) {
		// Setup
		ch := make(chan int)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		// Execute
		ok := Send(ctx, ch, 42)

		// Assert
		assert.False(t, ok)
		select {
		case <-ch:
			t.Fatal("no value should have been sent")
		default:
		}
	})
}

func TestPipeline(t *testing.T) {
	t.Run("should move values through a stage until the input closes", func(t *testing.T) {
		// Setup
		input := make(chan int, 3)
		output := make(chan int, 3)
		for _, v := range []int{1, 2, 3} {
			input <- v
		}
		close(input)

		go func() {
			for {
				value, ok := Receive(t.Context(), input)
				if !ok {
					close(output)
					return
				}
				if !Send(t.Context(), output, value*2) {
					return
				}
			}
		}()

		// Execute
		var results []int
		for {
			value, ok := Receive(t.Context(), output)
			if !ok {
				break
			}
			results = append(results, value)
		}

		// Assert
		assert.Equal(t, []int{2, 4, 6}, results)
	})

	t.Run("should terminate a blocked stage on cancellation", func(t *testing.T) {
		// Setup
		input := make(chan int)
		ctx, cancel := context.WithCancel(t.Context())

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = Receive(ctx, input)
		}()

		// Execute
		cancel()

		// Assert
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("stage should terminate when the context is canceled")
		}
	})
}

func TestFirstNonNil(t *testing.T) {
	t.Run("should pick the first usable channel", func(t *testing.T) {
		ch := make(chan int)

		assert.Equal(t, ch, FirstNonNil(nil, ch, make(chan int)))
	})

	t.Run("should return nil when every candidate is nil", func(t *testing.T) {
		assert.Nil(t, FirstNonNil[int](nil, nil))
		assert.Nil(t, FirstNonNil[int]())
	})
}
