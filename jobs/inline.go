package jobs

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
)

type inlineEnqueuer struct {
	handlers Handlers
	logger   zerolog.Logger
	closed   atomic.Bool
}

func newInlineEnqueuer(handlers Handlers, logger zerolog.Logger) *inlineEnqueuer {
	return &inlineEnqueuer{handlers: handlers, logger: logger}
}

// Enqueue runs the job before returning; its error is the handler's.
func (e *inlineEnqueuer) Enqueue(ctx context.Context, job Job) (string, error) {
	if e.closed.Load() {
		return "", ErrQueueClosed
	}
	handler, err := e.handlers.lookup(job.Class)
	if err != nil {
		return "", err
	}

	jid := newJID()
	e.logger.Debug().Str("job", job.Class).Str("jid", jid).Msg("Performing job inline")
	if err := handler(ctx, job.Args); err != nil {
		return jid, fmt.Errorf("job %s (%s) failed: %w", job.Class, jid, err)
	}
	return jid, nil
}

func (e *inlineEnqueuer) Close() error {
	e.closed.Store(true)
	return nil
}
