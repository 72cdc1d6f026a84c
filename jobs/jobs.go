// Package jobs hands background work to the configured queue adapter.
//
// The sidekiq adapter only enqueues: an external worker fleet executes the
// jobs. The inline and async adapters execute registered Handlers in the
// process.
package jobs

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/a-peyrard/appboot/appconfig"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	// ErrUnknownJob is returned when no handler is registered for a class.
	ErrUnknownJob = errors.New("unknown job class")
	// ErrQueueClosed is returned by Enqueue after Close.
	ErrQueueClosed = errors.New("job queue is closed")
)

type (
	// Job is a unit of background work.
	Job struct {
		Class string
		Args  []any
		// Queue overrides the adapter default queue, sidekiq only.
		Queue string
	}

	// Handler executes one job class.
	Handler func(ctx context.Context, args []any) error

	// Handlers maps a job class to its handler.
	Handlers map[string]Handler

	// Enqueuer accepts jobs and returns their id.
	Enqueuer interface {
		Enqueue(ctx context.Context, job Job) (string, error)
		Close() error
	}
)

// Open builds the enqueuer matching adapter. Handlers are ignored by the
// sidekiq adapter.
func Open(adapter appconfig.QueueAdapter, handlers Handlers, logger zerolog.Logger) (Enqueuer, error) {
	logger = logger.With().Str("queue_adapter", kindOf(adapter)).Logger()

	switch a := adapter.(type) {
	case appconfig.SidekiqQueue:
		return newSidekiqEnqueuer(a)
	case appconfig.InlineQueue:
		return newInlineEnqueuer(handlers, logger), nil
	case appconfig.AsyncQueue:
		return newAsyncEnqueuer(a, handlers, logger), nil
	default:
		return nil, fmt.Errorf("unsupported queue adapter %T", adapter)
	}
}

func (h Handlers) lookup(class string) (Handler, error) {
	handler, found := h[class]
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownJob, class)
	}
	return handler, nil
}

// newJID returns 24 hex characters, the id format sidekiq workers expect.
func newJID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:12])
}

func kindOf(adapter appconfig.QueueAdapter) string {
	if adapter == nil {
		return "none"
	}
	return string(adapter.Kind())
}
