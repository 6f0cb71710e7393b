package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"

	"sauna-configurator-api/internal/domain"
	"sauna-configurator-api/internal/metrics"
)

const priceCacheName = "price"

func priceKey(productID int64) string {
	return "price:" + strconv.FormatInt(productID, 10)
}

// PriceCache stores catalog prices per catalog product id
type PriceCache struct {
	store   Store
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewPriceCache creates a catalog price cache
func NewPriceCache(store Store, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) *PriceCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PriceCache{store: store, ttl: ttl, metrics: m, logger: logger}
}

// GetMany returns the cached prices and the ids that were not cached
func (c *PriceCache) GetMany(ctx context.Context, ids []int64) (map[int64]domain.CatalogPrice, []int64) {
	found := make(map[int64]domain.CatalogPrice, len(ids))
	var missing []int64

	for _, id := range ids {
		raw, err := c.store.Get(ctx, priceKey(id))
		if err == nil {
			var price domain.CatalogPrice
			if err = json.Unmarshal(raw, &price); err == nil {
				found[id] = price
				c.record(true)
				continue
			}
		}
		if err != ErrMiss {
			c.logger.Warn("Price cache read failed", zap.Int64("catalog_product_id", id), zap.Error(err))
		}
		missing = append(missing, id)
		c.record(false)
	}
	return found, missing
}

// SetMany stores prices; failures are logged and ignored
func (c *PriceCache) SetMany(ctx context.Context, prices map[int64]domain.CatalogPrice) {
	for id, price := range prices {
		raw, err := json.Marshal(price)
		if err != nil {
			continue
		}
		if err := c.store.Set(ctx, priceKey(id), raw, c.ttl); err != nil {
			c.logger.Warn("Price cache write failed", zap.Int64("catalog_product_id", id), zap.Error(err))
		}
	}
}

func (c *PriceCache) record(hit bool) {
	if c.metrics != nil {
		c.metrics.RecordCacheLookup(priceCacheName, hit)
	}
}
