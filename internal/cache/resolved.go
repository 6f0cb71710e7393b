package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sauna-configurator-api/internal/domain"
	"sauna-configurator-api/internal/metrics"
)

const resolvedCacheName = "resolved"

// ResolvedKey identifies a resolved configuration by its inputs.
// A product write changes updatedAt and a settings write changes the version, so stale entries are never read.
func ResolvedKey(productID string, updatedAt time.Time, settingsVersion int64) string {
	return fmt.Sprintf("resolved:%s:%d:%d", productID, updatedAt.UnixNano(), settingsVersion)
}

// ResolvedCache stores resolved product configurations
type ResolvedCache struct {
	store   Store
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewResolvedCache creates a resolved configuration cache
func NewResolvedCache(store Store, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) *ResolvedCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResolvedCache{store: store, ttl: ttl, metrics: m, logger: logger}
}

// Get returns the cached configuration; any store or decode failure counts as a miss
func (c *ResolvedCache) Get(ctx context.Context, key string) (*domain.ProductConfig, bool) {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if err != ErrMiss {
			c.logger.Warn("Resolved cache read failed", zap.String("key", key), zap.Error(err))
		}
		c.record(false)
		return nil, false
	}

	var cfg domain.ProductConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		c.logger.Warn("Dropping undecodable resolved cache entry", zap.String("key", key), zap.Error(err))
		_ = c.store.Delete(ctx, key)
		c.record(false)
		return nil, false
	}

	c.record(true)
	return &cfg, true
}

// Set stores a resolved configuration; failures are logged and ignored
func (c *ResolvedCache) Set(ctx context.Context, key string, cfg *domain.ProductConfig) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		c.logger.Warn("Failed to encode resolved config", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		c.logger.Warn("Resolved cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *ResolvedCache) record(hit bool) {
	if c.metrics != nil {
		c.metrics.RecordCacheLookup(resolvedCacheName, hit)
	}
}
