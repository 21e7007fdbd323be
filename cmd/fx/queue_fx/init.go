package queue_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"kindred/internal/infra/queue"
	"kindred/pkg/config"
)

var Module = fx.Provide(provideProducer)

func provideProducer(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) queue.ProducerHandler {
	producer := queue.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaUsername, cfg.KafkaPassword, log)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return producer.Close()
		},
	})
	return producer
}
