package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"kindred/pkg/config"
	mem "kindred/pkg/memcache"
)

var Module = fx.Provide(provideTokenDenylist)

// provideTokenDenylist uses Redis when REDIS_URL is set so revocations survive
// restarts and are shared between instances.
func provideTokenDenylist(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (mem.TokenDenylist, error) {
	if cfg.RedisURL == "" {
		log.Info("REDIS_URL not set, using in-memory token denylist")
		return mem.NewMemoryDenylist(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := mem.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	log.Info("token denylist backed by redis")
	return mem.NewRedisDenylist(client), nil
}
