package jobs

import (
	"context"
	"sync"

	"github.com/a-peyrard/appboot/appconfig"
	"github.com/a-peyrard/appboot/runner"
	"github.com/rs/zerolog"
)

type (
	asyncEnqueuer struct {
		mu     sync.RWMutex
		closed bool
		// done is closed by Close, it releases blocked senders and idle workers.
		done chan struct{}
		// sending counts the Enqueue calls that may still push to queue.
		sending  sync.WaitGroup
		queue    chan queuedJob
		handlers Handlers
		workers  int
		logger   zerolog.Logger
	}

	queuedJob struct {
		Job
		jid string
	}
)

func newAsyncEnqueuer(adapter appconfig.AsyncQueue, handlers Handlers, logger zerolog.Logger) *asyncEnqueuer {
	return &asyncEnqueuer{
		done:     make(chan struct{}),
		queue:    make(chan queuedJob, adapter.Capacity),
		handlers: handlers,
		workers:  adapter.Workers,
		logger:   logger,
	}
}

// Enqueue hands the job to the worker pool, waiting for room in the queue
// unless ctx ends or the enqueuer is closed first.
func (e *asyncEnqueuer) Enqueue(ctx context.Context, job Job) (string, error) {
	e.mu.RLock()
	if e.closed {
		e.mu.RUnlock()
		return "", ErrQueueClosed
	}
	e.sending.Add(1)
	e.mu.RUnlock()
	defer e.sending.Done()

	if _, err := e.handlers.lookup(job.Class); err != nil {
		return "", err
	}

	queued := queuedJob{Job: job, jid: newJID()}
	select {
	case e.queue <- queued:
		return queued.jid, nil
	case <-ctx.Done():
		return "", ctx.Err()
	case <-e.done:
		return "", ErrQueueClosed
	}
}

// Run executes queued jobs on the configured number of workers until ctx
// ends or the enqueuer is closed. It then closes the enqueuer and performs
// every job still queued before returning, so no accepted job is lost.
func (e *asyncEnqueuer) Run(ctx context.Context) error {
	workers := make([]runner.Runnable, e.workers)
	for i := range workers {
		workers[i] = runner.RunnableFunc(e.work)
	}
	err := runner.RunAll(ctx, workers...)

	_ = e.Close()
	e.drain(context.WithoutCancel(ctx))

	return err
}

func (e *asyncEnqueuer) work(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-e.done:
			return nil
		case job := <-e.queue:
			e.perform(ctx, job)
		}
	}
}

// drain must only run once Close has returned: no sender is left then.
func (e *asyncEnqueuer) drain(ctx context.Context) {
	for {
		select {
		case job := <-e.queue:
			e.perform(ctx, job)
		default:
			return
		}
	}
}

func (e *asyncEnqueuer) perform(ctx context.Context, job queuedJob) {
	logger := e.logger.With().Str("job", job.Class).Str("jid", job.jid).Logger()
	handler, err := e.handlers.lookup(job.Class)
	if err != nil {
		logger.Error().Err(err).Msg("Dropping job")
		return
	}

	logger.Debug().Msg("Performing job")
	if err := handler(ctx, job.Args); err != nil {
		logger.Error().Err(err).Msg("Job failed")
		return
	}
	logger.Debug().Msg("Job done")
}

// Close stops accepting jobs and releases any Enqueue waiting for room.
// Jobs already queued are performed by Run before it returns.
func (e *asyncEnqueuer) Close() error {
	e.mu.Lock()
	if !e.closed {
		e.closed = true
		close(e.done)
	}
	e.mu.Unlock()

	e.sending.Wait()
	return nil
}
