// Package boot assembles the application collaborators from one AppConfig.
package boot

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/a-peyrard/appboot/appconfig"
	"github.com/a-peyrard/appboot/cache"
	"github.com/a-peyrard/appboot/jobs"
	"github.com/a-peyrard/appboot/logging"
	"github.com/a-peyrard/appboot/option"
	"github.com/a-peyrard/appboot/runner"
	"github.com/rs/zerolog"
)

type (
	// App holds every collaborator built from the configuration. Each of them
	// received the AppConfig explicitly; nothing reads it from a global.
	App struct {
		Config *appconfig.AppConfig
		Logger zerolog.Logger
		Cache  cache.Store
		Jobs   jobs.Enqueuer
	}

	Options struct {
		handlers   jobs.Handlers
		logOptions []option.Option[logging.Options]
	}
)

// WithJobHandlers registers the handlers used by in-process queue adapters.
func WithJobHandlers(handlers jobs.Handlers) option.Option[Options] {
	return func(opts *Options) {
		opts.handlers = handlers
	}
}

// WithLogOptions is passed through to logging.New.
func WithLogOptions(logOptions ...option.Option[logging.Options]) option.Option[Options] {
	return func(opts *Options) {
		opts.logOptions = append(opts.logOptions, logOptions...)
	}
}

// New builds the logger, the cache store and the job enqueuer. None of them
// contacts its backend here.
func New(cfg *appconfig.AppConfig, opts ...option.Option[Options]) (*App, error) {
	options := option.Build(&Options{handlers: jobs.Handlers{}}, opts...)

	logger := logging.New(cfg, options.logOptions...)

	store, err := cache.Open(cfg.Cache())
	if err != nil {
		return nil, fmt.Errorf("unable to open cache: %w", err)
	}

	enqueuer, err := jobs.Open(cfg.QueueAdapter(), options.handlers, logger)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("unable to open job queue: %w", err)
	}

	return &App{
		Config: cfg,
		Logger: logger,
		Cache:  store,
		Jobs:   enqueuer,
	}, nil
}

// Middleware tags request log lines with the configured log tags.
func (a *App) Middleware() func(http.Handler) http.Handler {
	return logging.Middleware(a.Logger, a.Config.LogTags())
}

// Runnables returns the long-lived components to run, such as in-process
// job workers.
func (a *App) Runnables() []runner.Runnable {
	var runnables []runner.Runnable
	if workers, ok := a.Jobs.(runner.Runnable); ok {
		runnables = append(runnables, workers)
	}
	return runnables
}

// Close releases the job queue then the cache, reporting every failure.
func (a *App) Close() error {
	return errors.Join(a.Jobs.Close(), a.Cache.Close())
}
