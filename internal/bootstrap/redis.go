package bootstrap

import (
	"github.com/redis/go-redis/v9"

	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/config"
)

// NewRedisClient connects to Redis for session state. Returns nil when no
// address is configured; callers treat a nil client as persistence disabled.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
