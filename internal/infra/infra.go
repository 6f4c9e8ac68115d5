// Package infra wires optional external backends. The converter itself is a
// pure pipeline; the only backend is Redis, used for rate-limit counters.
package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/textvcard/backend/internal/config"
)

type Infra struct {
	Redis *redis.Client // nil when REDIS_ADDR is not configured
}

// New connects to Redis when configured. Without REDIS_ADDR the service runs
// with the rate limiter disabled rather than failing to start.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Infra, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("redis not configured; rate limiting disabled")
		return &Infra{}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	logger.Info("infra ready", zap.String("redis", cfg.Redis.Addr))
	return &Infra{Redis: rdb}, nil
}

func (i *Infra) Close() {
	if i == nil {
		return
	}
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
}
