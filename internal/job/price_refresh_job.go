package job

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sauna-configurator-api/internal/client"
	"sauna-configurator-api/internal/domain"
	"sauna-configurator-api/internal/metrics"
	"sauna-configurator-api/internal/pricing"
	"sauna-configurator-api/internal/repository"
)

// Refresh outcomes reported to metrics
const (
	statusSuccess = "success"
	statusPartial = "partial"
	statusFailed  = "failed"
	statusSkipped = "skipped"
)

// PriceWriter stores refreshed catalog prices
type PriceWriter interface {
	SetMany(ctx context.Context, prices map[int64]domain.CatalogPrice)
}

// PriceRefreshJob re-reads catalog prices for every catalog product linked from a product
// config or from the global option links
type PriceRefreshJob struct {
	productRepo  repository.ProductConfigRepository
	settingsRepo repository.AdminConfigRepository
	catalog      client.CatalogClient
	prices       PriceWriter
	metrics      *metrics.Metrics
	logger       *zap.Logger
	timeout      time.Duration
}

// NewPriceRefreshJob creates a new PriceRefreshJob instance
func NewPriceRefreshJob(
	productRepo repository.ProductConfigRepository,
	settingsRepo repository.AdminConfigRepository,
	catalog client.CatalogClient,
	prices PriceWriter,
	m *metrics.Metrics,
	logger *zap.Logger,
) *PriceRefreshJob {
	return &PriceRefreshJob{
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
		catalog:      catalog,
		prices:       prices,
		metrics:      m,
		logger:       logger,
		timeout:      2 * time.Minute,
	}
}

// Run executes the refresh; it satisfies cron.Job
func (j *PriceRefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	j.logger.Info("Starting catalog price refresh")

	ids, err := j.linkedProductIDs(ctx)
	if err != nil {
		j.logger.Error("Failed to collect linked catalog products", zap.Error(err))
		j.record(statusFailed)
		return
	}

	if len(ids) == 0 {
		j.logger.Info("No catalog products linked")
		j.record(statusSkipped)
		return
	}

	prices, err := j.catalog.GetPrices(ctx, ids)
	if err != nil {
		j.logger.Error("Failed to fetch catalog prices",
			zap.Int("count", len(ids)),
			zap.Error(err),
		)
		j.record(statusFailed)
		return
	}

	j.prices.SetMany(ctx, prices)

	status := statusSuccess
	if len(prices) < len(ids) {
		status = statusPartial
	}
	j.record(status)

	j.logger.Info("Catalog price refresh completed",
		zap.Int("linked", len(ids)),
		zap.Int("refreshed", len(prices)),
		zap.Int("failed", len(ids)-len(prices)),
	)
}

func (j *PriceRefreshJob) linkedProductIDs(ctx context.Context) ([]int64, error) {
	records, err := j.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool)
	for _, record := range records {
		cfg, err := record.ToProductConfig()
		if err != nil {
			j.logger.Warn("Skipping undecodable product config",
				zap.String("product_id", record.ProductID),
				zap.Error(err),
			)
			continue
		}
		for _, id := range pricing.LinkedProductIDs(cfg) {
			seen[id] = true
		}
	}

	if j.settingsRepo != nil {
		stored, err := j.settingsRepo.Get(ctx)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return nil, err
		default:
			snapshot, err := stored.Snapshot()
			if err != nil {
				j.logger.Warn("Skipping undecodable global settings", zap.Error(err))
				break
			}
			for _, id := range snapshot.Settings.OptionPipedriveProducts {
				seen[id] = true
			}
		}
	}

	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids, nil
}

func (j *PriceRefreshJob) record(status string) {
	if j.metrics != nil {
		j.metrics.RecordPriceRefresh(status)
	}
}
