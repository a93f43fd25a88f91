// Package cache provides the optional redis read-through cache for
// analytics snapshots.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"leadflow-crm/config"
	"leadflow-crm/internal/entities"
)

const analyticsKey = "analytics:snapshot"

// Analytics caches the /analytics snapshot for a short TTL. Mutations do not
// invalidate it; staleness is bounded by the TTL.
type Analytics struct {
	log *zap.SugaredLogger
	rdb *redis.Client
	ttl time.Duration
}

// NewAnalytics builds the cache, or returns nil when no redis address is
// configured. A nil *Analytics is a valid no-op cache.
func NewAnalytics(log *zap.SugaredLogger, cfg config.RedisConfig) *Analytics {
	if cfg.Addr == "" {
		return nil
	}
	return &Analytics{
		log: log.Named("cache.redis"),
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		ttl: cfg.AnalyticsTTL,
	}
}

// Get returns the cached snapshot if present and decodable.
func (c *Analytics) Get(ctx context.Context) (entities.AnalyticsSnapshot, bool) {
	if c == nil {
		return entities.AnalyticsSnapshot{}, false
	}

	raw, err := c.rdb.Get(ctx, analyticsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnw("analytics cache read failed", "error", err)
		}
		return entities.AnalyticsSnapshot{}, false
	}

	var snap entities.AnalyticsSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		c.log.Warnw("analytics cache decode failed", "error", err)
		return entities.AnalyticsSnapshot{}, false
	}
	return snap, true
}

// Set stores the snapshot with the configured TTL. Failures are logged and
// swallowed; the cache is best effort.
func (c *Analytics) Set(ctx context.Context, snap entities.AnalyticsSnapshot) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		c.log.Warnw("analytics cache encode failed", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, analyticsKey, raw, c.ttl).Err(); err != nil {
		c.log.Warnw("analytics cache write failed", "error", err)
	}
}

// Close releases the redis connection.
func (c *Analytics) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
