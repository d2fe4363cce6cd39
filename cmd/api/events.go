package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/messaging"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Consume book change events and log them",
		Long: `events binds mq.queue to mq.exchange with routing key "book.*" and logs
every book.created, book.updated and book.deleted event until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			log, err := provideLogger(cfg)
			if err != nil {
				return err
			}

			consumer, err := mq.NewConsumer(cfg.MQ.URL, cfg.MQ.Exchange, mq.ExchangeTopic,
				cfg.MQ.Queue, []string{messaging.RoutingKeyAll}, log)
			if err != nil {
				return err
			}
			defer consumer.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return consumer.Consume(ctx, messaging.LogHandler(consumer.Queue(), log))
		},
	}
}
