package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/a-peyrard/appboot/appconfig"
	"github.com/a-peyrard/appboot/boot"
	"github.com/a-peyrard/appboot/logging"
	"github.com/a-peyrard/appboot/option"
	"github.com/a-peyrard/appboot/runner"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var jsonLogs bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load the configuration, boot every component and run until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := appconfig.Load()
			if err != nil {
				return err
			}

			logOptions := []option.Option[logging.Options]{logging.WithWriter(cmd.OutOrStdout())}
			if jsonLogs {
				logOptions = append(logOptions, logging.WithJSON())
			}
			app, err := boot.New(cfg, boot.WithLogOptions(logOptions...))
			if err != nil {
				return fmt.Errorf("unable to boot: %w", err)
			}
			//goland:noinspection GoUnhandledErrorResult
			defer app.Close()

			app.Logger.Info().
				Str("cache_backend", string(cfg.Cache().Kind())).
				Str("cache_namespace", cfg.CacheNamespace()).
				Str("queue_adapter", string(cfg.QueueAdapter().Kind())).
				Msg("Application booted")

			runnables := append(app.Runnables(), runner.RunnableFunc(waitForShutdown))
			if err := runner.RunAll(cmd.Context(), runnables...); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			app.Logger.Info().Msg("bye.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonLogs, "json-logs", false, "Write logs as JSON lines")

	return cmd
}

func waitForShutdown(ctx context.Context) error {
	<-ctx.Done()
	return nil
}
