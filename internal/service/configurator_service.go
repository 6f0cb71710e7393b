package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"sauna-configurator-api/internal/cache"
	"sauna-configurator-api/internal/client"
	"sauna-configurator-api/internal/domain"
	"sauna-configurator-api/internal/dto"
	"sauna-configurator-api/internal/metrics"
	"sauna-configurator-api/internal/pricing"
	"sauna-configurator-api/internal/registry"
	"sauna-configurator-api/internal/resolver"
	"sauna-configurator-api/internal/response"
)

// Price sources reported per option
const (
	priceSourceCatalog  = "catalog"
	priceSourceManual   = "manual"
	priceSourceIncluded = "included"
	priceSourceHeater   = "heater"
)

// ConfiguratorService defines the customer-facing read side of the configurator
type ConfiguratorService interface {
	GetResolvedConfig(ctx context.Context, productID string) (*dto.ResolvedConfigResponse, error)
	GetHeaterStones(ctx context.Context, productID, heaterID string) (*dto.HeaterStonesResponse, error)
	GetProductPrices(ctx context.Context, productID, heaterID string) (*dto.ProductPricesResponse, error)
}

// configuratorServiceImpl is the implementation of ConfiguratorService
type configuratorServiceImpl struct {
	products ProductConfigService
	settings GlobalSettingsService
	registry *registry.Registry
	engine   *resolver.Engine
	resolved ResolvedConfigCache
	prices   PriceCache
	catalog  client.CatalogClient
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// ConfiguratorDeps groups the collaborators of the configurator service
type ConfiguratorDeps struct {
	Products ProductConfigService
	Settings GlobalSettingsService
	Registry *registry.Registry
	Engine   *resolver.Engine
	Resolved ResolvedConfigCache
	Prices   PriceCache
	Catalog  client.CatalogClient
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
}

// NewConfiguratorService creates a new instance of ConfiguratorService
func NewConfiguratorService(deps ConfiguratorDeps) ConfiguratorService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	engine := deps.Engine
	if engine == nil {
		engine = resolver.NewEngine(logger)
	}
	catalog := deps.Catalog
	if catalog == nil {
		catalog = client.NewNoOpCatalogClient()
	}
	return &configuratorServiceImpl{
		products: deps.Products,
		settings: deps.Settings,
		registry: deps.Registry,
		engine:   engine,
		resolved: deps.Resolved,
		prices:   deps.Prices,
		catalog:  catalog,
		metrics:  deps.Metrics,
		logger:   logger,
	}
}

// GetResolvedConfig resolves a product config against the registry and the global settings
func (s *configuratorServiceImpl) GetResolvedConfig(ctx context.Context, productID string) (*dto.ResolvedConfigResponse, error) {
	cfg, err := s.products.GetProductConfig(ctx, productID, nil)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.settings.Current(ctx)
	if err != nil {
		return nil, err
	}

	family := resolver.ClassifyFamily(cfg.ProductID, cfg.ProductName, cfg.Family)
	key := cache.ResolvedKey(cfg.ProductID, cfg.UpdatedAt, snapshot.Version)

	if s.resolved != nil {
		if cached, ok := s.resolved.Get(ctx, key); ok {
			s.recordResolution(family, metrics.SourceCache, 0)
			return newResolvedResponse(cached, snapshot.Version), nil
		}
	}

	start := time.Now()
	resolved := s.engine.Resolve(cfg, &snapshot.Settings, s.registry.StepData(family))
	s.recordResolution(family, metrics.SourceComputed, time.Since(start))

	if len(resolved.Steps) == 0 {
		s.logger.Warn("Product config resolved to no steps", zap.String("product_id", productID))
	}
	if s.resolved != nil {
		s.resolved.Set(ctx, key, resolved)
	}
	return newResolvedResponse(resolved, snapshot.Version), nil
}

// GetHeaterStones computes the stone requirement of a heater option of the product
func (s *configuratorServiceImpl) GetHeaterStones(ctx context.Context, productID, heaterID string) (*dto.HeaterStonesResponse, error) {
	if heaterID == "" {
		return nil, response.NewValidationError("heaterId is required", "")
	}

	resolved, err := s.GetResolvedConfig(ctx, productID)
	if err != nil {
		return nil, err
	}

	heater, ok := resolved.StepData[domain.StepHeater]
	if !ok {
		return nil, response.NewNotFoundError("Product has no heater step", "")
	}
	if _, ok := heater.FindOption(heaterID); !ok {
		return nil, response.NewNotFoundError("Heater option not found", "")
	}

	return &dto.HeaterStonesResponse{
		ProductID: productID,
		HeaterID:  heaterID,
		Stones:    pricing.CalculateHeaterStones(heaterID, heater.Options),
	}, nil
}

// GetProductPrices lists the effective option prices, reading catalog prices through the price cache.
// With a heater id the stone option priced from the selected heater carries the stone line.
func (s *configuratorServiceImpl) GetProductPrices(ctx context.Context, productID, heaterID string) (*dto.ProductPricesResponse, error) {
	resolved, err := s.GetResolvedConfig(ctx, productID)
	if err != nil {
		return nil, err
	}
	cfg := &resolved.ProductConfig

	var prices map[int64]domain.CatalogPrice
	if cfg.PriceSource == domain.PriceSourcePipedrive {
		prices = s.catalogPrices(ctx, pricing.LinkedProductIDs(cfg))
	}
	priced := pricing.ApplyCatalogPrices(cfg, prices)

	var stones *domain.HeaterStones
	if heaterID != "" {
		heater, ok := priced.StepData[domain.StepHeater]
		if !ok {
			return nil, response.NewNotFoundError("Product has no heater step", "")
		}
		if _, ok := heater.FindOption(heaterID); !ok {
			return nil, response.NewNotFoundError("Heater option not found", "")
		}
		stones = pricing.CalculateHeaterStones(heaterID, heater.Options)
		heater.Options = pricing.ApplyHeaterStones(heater.Options, stones)
		priced.StepData[domain.StepHeater] = heater
	}

	options := make([]dto.OptionPriceResponse, 0)
	for _, step := range priced.Steps {
		data, ok := priced.StepData[step.ID]
		if !ok {
			continue
		}
		for _, opt := range data.Options {
			line := dto.OptionPriceResponse{
				StepID:           step.ID,
				OptionID:         opt.ID,
				CatalogProductID: opt.PipedriveProductID,
				Price:            opt.Price,
				Included:         opt.Included,
				Stones:           opt.Stones,
				Source:           priceSourceManual,
			}
			switch {
			case opt.Included:
				line.Price = 0
				line.Source = priceSourceIncluded
			case opt.Stones != nil:
				line.Source = priceSourceHeater
			case opt.PipedriveProductID != nil:
				if price, ok := prices[*opt.PipedriveProductID]; ok {
					line.Source = priceSourceCatalog
					line.Currency = price.Currency
					line.TaxRate = price.TaxRate
				}
			}
			options = append(options, line)
		}
	}

	return &dto.ProductPricesResponse{
		ProductID:    productID,
		PriceSource:  string(cfg.PriceSource),
		HeaterID:     heaterID,
		HeaterStones: stones,
		Options:      options,
	}, nil
}

// catalogPrices reads cached prices and fetches the missing ones from the catalog
func (s *configuratorServiceImpl) catalogPrices(ctx context.Context, ids []int64) map[int64]domain.CatalogPrice {
	if len(ids) == 0 {
		return nil
	}

	prices := make(map[int64]domain.CatalogPrice, len(ids))
	missing := ids
	if s.prices != nil {
		var found map[int64]domain.CatalogPrice
		found, missing = s.prices.GetMany(ctx, ids)
		for id, price := range found {
			prices[id] = price
		}
	}
	if len(missing) == 0 {
		return prices
	}

	fetched, err := s.catalog.GetPrices(ctx, missing)
	if err != nil {
		s.logger.Warn("Catalog prices unavailable, falling back to manual prices",
			zap.Int("missing", len(missing)),
			zap.Error(err),
		)
		return prices
	}
	if s.prices != nil {
		s.prices.SetMany(ctx, fetched)
	}
	for id, price := range fetched {
		prices[id] = price
	}
	return prices
}

func (s *configuratorServiceImpl) recordResolution(family domain.ProductFamily, source string, duration time.Duration) {
	if s.metrics != nil {
		s.metrics.RecordResolution(string(family), source, duration)
	}
}

func newResolvedResponse(cfg *domain.ProductConfig, settingsVersion int64) *dto.ResolvedConfigResponse {
	return &dto.ResolvedConfigResponse{
		ProductConfig:   *cfg,
		Empty:           len(cfg.Steps) == 0,
		SettingsVersion: settingsVersion,
	}
}
