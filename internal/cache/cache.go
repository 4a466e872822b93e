package cache

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ClaudeMKA/Pulse-sub001/config"
)

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// New returns a redis backed cache when REDIS_ADDR is set and reachable,
// otherwise an in-process LRU.
func New(cfg config.Cache) Cache {
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rc, err := NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.TTL)
		if err == nil {
			logrus.WithField("addr", cfg.RedisAddr).Info("Redis cache connection established")
			return rc
		}
		logrus.WithError(err).Warn("Redis unavailable, falling back to in-process cache")
	}
	return NewLocal(cfg.LocalSize, cfg.TTL)
}
