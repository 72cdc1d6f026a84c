package runner

import (
	"context"
	"errors"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingWorker adds value to counter as soon as it starts, then waits for
// delay or for its context.
type countingWorker struct {
	counter *int32
	value   int32
	err     error
	delay   time.Duration
}

func (w *countingWorker) Run(ctx context.Context) error {
	if w.counter != nil {
		atomic.AddInt32(w.counter, w.value)
	}

	if w.delay > 0 {
		select {
		case <-time.After(w.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return w.err
}

func TestRunAll(t *testing.T) {
	t.Run("it should run all runnables successfully", func(t *testing.T) {
		// GIVEN
		var counter int32
		workers := []Runnable{
			&countingWorker{counter: &counter, value: 1},
			&countingWorker{counter: &counter, value: 2},
			&countingWorker{counter: &counter, value: 3},
		}

		// WHEN
		err := RunAll(context.Background(), workers...)

		// THEN
		assert.NoError(t, err)
		assert.Equal(t, int32(6), atomic.LoadInt32(&counter))
	})

	t.Run("it should return the error of a failing runnable", func(t *testing.T) {
		// GIVEN
		var counter int32
		failure := errors.New("worker crashed")

		// WHEN
		err := RunAll(context.Background(),
			&countingWorker{counter: &counter, value: 1},
			&countingWorker{err: failure},
		)

		// THEN
		assert.ErrorIs(t, err, failure)
	})

	t.Run("it should cancel siblings when one runnable fails", func(t *testing.T) {
		// GIVEN
		failure := errors.New("worker crashed")
		var siblingErr atomic.Value

		sibling := RunnableFunc(func(ctx context.Context) error {
			<-ctx.Done()
			siblingErr.Store(ctx.Err())
			return nil
		})

		// WHEN
		err := RunAll(context.Background(), sibling, &countingWorker{err: failure})

		// THEN
		assert.ErrorIs(t, err, failure)
		assert.Equal(t, context.Canceled, siblingErr.Load())
	})

	t.Run("it should handle empty runnable list", func(t *testing.T) {
		// GIVEN / WHEN
		err := RunAll(context.Background())

		// THEN
		assert.NoError(t, err)
	})

	t.Run("it should respect context cancellation", func(t *testing.T) {
		// GIVEN
		ctx, cancel := context.WithCancel(context.Background())
		var started int32

		// WHEN
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()
		err := RunAll(ctx,
			&countingWorker{counter: &started, value: 1, delay: time.Second},
			&countingWorker{counter: &started, value: 1, delay: time.Second},
		)

		// THEN
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(2), atomic.LoadInt32(&started))
	})

	t.Run("it should run runnables concurrently", func(t *testing.T) {
		// GIVEN
		start := time.Now()
		duration := 50 * time.Millisecond

		// WHEN
		err := RunAll(context.Background(),
			&countingWorker{delay: duration},
			&countingWorker{delay: duration},
			&countingWorker{delay: duration},
		)

		// THEN
		assert.NoError(t, err)
		assert.Less(t, time.Since(start), 140*time.Millisecond, "runnables should run concurrently")
	})
}

func TestWithSyscallKillableContext(t *testing.T) {
	t.Run("it should be cancelled with its parent", func(t *testing.T) {
		// GIVEN
		parent, cancel := context.WithCancel(context.Background())
		ctx := WithSyscallKillableContext(parent)

		// WHEN
		cancel()

		// THEN
		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Fatal("context was not cancelled")
		}
	})

	t.Run("it should be cancelled on SIGTERM", func(t *testing.T) {
		// GIVEN
		ctx := WithSyscallKillableContext(context.Background())

		// WHEN
		require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

		// THEN
		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Fatal("context was not cancelled")
		}
	})
}
