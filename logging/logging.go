// Package logging builds the application logger from the AppConfig and
// tags request log lines with the configured metadata.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/a-peyrard/appboot/appconfig"
	"github.com/a-peyrard/appboot/option"
	"github.com/rs/zerolog"
)

type Options struct {
	writer io.Writer
	json   bool
	caller bool
}

// WithWriter sends log lines to w instead of stdout.
func WithWriter(w io.Writer) option.Option[Options] {
	return func(opts *Options) {
		opts.writer = w
	}
}

// WithJSON emits one JSON object per line instead of the console format.
func WithJSON() option.Option[Options] {
	return func(opts *Options) {
		opts.json = true
	}
}

// WithCaller adds the file:line of the log call.
func WithCaller() option.Option[Options] {
	return func(opts *Options) {
		opts.caller = true
	}
}

// New returns a timestamped logger at the configured level.
func New(cfg *appconfig.AppConfig, opts ...option.Option[Options]) zerolog.Logger {
	options := option.Build(&Options{writer: os.Stdout}, opts...)

	writer := options.writer
	if !options.json {
		writer = zerolog.ConsoleWriter{Out: options.writer, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(writer).
		Level(cfg.LogLevel().Zerolog()).
		With().
		Timestamp()
	if options.caller {
		ctx = ctx.Caller()
	}

	return ctx.Logger()
}
