package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sauna-configurator-api/internal/domain"
	"sauna-configurator-api/internal/dto"
	"sauna-configurator-api/internal/metrics"
	"sauna-configurator-api/internal/registry"
	"sauna-configurator-api/internal/repository"
	"sauna-configurator-api/internal/resolver"
	"sauna-configurator-api/internal/response"
	"sauna-configurator-api/internal/validation"
)

// ProductConfigService defines the interface for product config administration
type ProductConfigService interface {
	ListProductConfigs(ctx context.Context) ([]dto.ProductConfigSummary, error)
	// GetProductConfig returns the stored config, creating it from the registry on first access
	GetProductConfig(ctx context.Context, productID string, query *dto.CreateProductConfigQuery) (*domain.ProductConfig, error)
	ReplaceProductConfig(ctx context.Context, productID string, raw []byte) (*domain.ProductConfig, error)
	PatchProductConfig(ctx context.Context, productID string, req *dto.PatchProductConfigRequest) (*domain.ProductConfig, error)
	DeleteProductConfig(ctx context.Context, productID string) error
}

// productConfigServiceImpl is the implementation of ProductConfigService
type productConfigServiceImpl struct {
	repo     repository.ProductConfigRepository
	registry *registry.Registry
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewProductConfigService creates a new instance of ProductConfigService
func NewProductConfigService(repo repository.ProductConfigRepository, reg *registry.Registry, m *metrics.Metrics, logger *zap.Logger) ProductConfigService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &productConfigServiceImpl{
		repo:     repo,
		registry: reg,
		metrics:  m,
		logger:   logger,
	}
}

// ListProductConfigs lists every stored product config
func (s *productConfigServiceImpl) ListProductConfigs(ctx context.Context) ([]dto.ProductConfigSummary, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch product configs", err.Error())
	}

	summaries := make([]dto.ProductConfigSummary, 0, len(records))
	for _, record := range records {
		cfg, err := record.ToProductConfig()
		if err != nil {
			s.logger.Warn("Skipping undecodable product config",
				zap.String("product_id", record.ProductID),
				zap.Error(err),
			)
			continue
		}
		summaries = append(summaries, dto.NewProductConfigSummary(cfg))
	}
	return summaries, nil
}

// GetProductConfig retrieves a product config, creating it from registry defaults if missing
func (s *productConfigServiceImpl) GetProductConfig(ctx context.Context, productID string, query *dto.CreateProductConfigQuery) (*domain.ProductConfig, error) {
	record, err := s.repo.FindByID(ctx, productID)
	if err == nil {
		return decodeRecord(record)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch product config", err.Error())
	}

	if !validation.IsStepID(productID) {
		return nil, response.NewValidationError(fmt.Sprintf("Invalid product id: %s", productID), "")
	}

	name := humanizeProductID(productID)
	explicit := domain.FamilyUnknown
	if query != nil {
		if query.Name != "" {
			name = query.Name
		}
		explicit = domain.ProductFamily(query.Family)
	}
	family := resolver.ClassifyFamily(productID, name, explicit)

	cfg := s.registry.NewProductConfig(productID, name, family)
	record, err = domain.NewProductConfigRecord(cfg)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode product config", err.Error())
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create product config", err.Error())
	}

	// A concurrent first access may have created the row already; return whatever is stored
	stored, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch product config", err.Error())
	}

	s.logger.Info("Product config created from registry defaults",
		zap.String("product_id", productID),
		zap.String("family", string(family)),
	)
	if s.metrics != nil {
		s.metrics.IncrementProductConfigSaved()
	}
	return decodeRecord(stored)
}

// ReplaceProductConfig validates and stores a complete product config
func (s *productConfigServiceImpl) ReplaceProductConfig(ctx context.Context, productID string, raw []byte) (*domain.ProductConfig, error) {
	if !validation.IsStepID(productID) {
		return nil, response.NewValidationError(fmt.Sprintf("Invalid product id: %s", productID), "")
	}
	if err := validation.ValidateProductConfig(raw); err != nil {
		return nil, response.NewValidationError("Invalid product config", err.Error())
	}

	var cfg domain.ProductConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, response.NewValidationError("Invalid product config", err.Error())
	}
	if cfg.ProductID != "" && cfg.ProductID != productID {
		return nil, response.NewValidationError("Product id in body does not match path", "")
	}
	cfg.ProductID = productID
	if cfg.PriceSource == "" {
		cfg.PriceSource = domain.PriceSourceManual
	}
	for stepID, data := range cfg.StepData {
		if data.StepID == "" {
			data.StepID = stepID
			cfg.StepData[stepID] = data
		}
	}

	return s.save(ctx, &cfg)
}

// PatchProductConfig applies a partial update to an existing product config
func (s *productConfigServiceImpl) PatchProductConfig(ctx context.Context, productID string, req *dto.PatchProductConfigRequest) (*domain.ProductConfig, error) {
	record, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Product config not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch product config", err.Error())
	}
	cfg, err := decodeRecord(record)
	if err != nil {
		return nil, err
	}

	if req.ProductName != nil {
		cfg.ProductName = *req.ProductName
	}
	if req.Family != nil {
		cfg.Family = domain.ProductFamily(*req.Family)
	}
	if req.MainProductImageURL != nil {
		cfg.MainProductImageURL = *req.MainProductImageURL
	}
	if req.MainProductPipedriveID != nil {
		id := *req.MainProductPipedriveID
		cfg.MainProductPipedriveID = &id
	}
	if req.Design != nil {
		cfg.Design = *req.Design
	}
	if req.QuoteSettings != nil {
		cfg.QuoteSettings = *req.QuoteSettings
	}
	if req.PriceSource != nil {
		cfg.PriceSource = domain.PriceSource(*req.PriceSource)
	}
	if req.StepOrder != nil {
		if err := s.reorderSteps(cfg, req.StepOrder); err != nil {
			return nil, err
		}
	}
	for stepID, patch := range req.Steps {
		if err := applyStepPatch(cfg, stepID, patch); err != nil {
			return nil, err
		}
	}

	return s.save(ctx, cfg)
}

// DeleteProductConfig removes a product config
func (s *productConfigServiceImpl) DeleteProductConfig(ctx context.Context, productID string) error {
	if err := s.repo.Delete(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Product config not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete product config", err.Error())
	}
	s.logger.Info("Product config deleted", zap.String("product_id", productID))
	return nil
}

func (s *productConfigServiceImpl) save(ctx context.Context, cfg *domain.ProductConfig) (*domain.ProductConfig, error) {
	cfg.UpdatedAt = time.Now().UTC()
	record, err := domain.NewProductConfigRecord(cfg)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode product config", err.Error())
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save product config", err.Error())
	}
	if s.metrics != nil {
		s.metrics.IncrementProductConfigSaved()
	}
	return decodeRecord(record)
}

// reorderSteps rebuilds the step list in the given order.
// Ids unknown to the product are taken from the registry defaults of its family.
func (s *productConfigServiceImpl) reorderSteps(cfg *domain.ProductConfig, order []string) error {
	current := make(map[string]domain.Step, len(cfg.Steps))
	for _, step := range cfg.Steps {
		current[step.ID] = step
	}

	defaults := s.registry.Defaults(resolver.ClassifyFamily(cfg.ProductID, cfg.ProductName, cfg.Family))
	registrySteps := make(map[string]domain.Step, len(defaults.Steps))
	for _, step := range defaults.Steps {
		registrySteps[step.ID] = step
	}

	seen := make(map[string]bool, len(order))
	steps := make([]domain.Step, 0, len(order))
	for _, id := range order {
		if seen[id] {
			return response.NewValidationError(fmt.Sprintf("Duplicate step in order: %s", id), "")
		}
		seen[id] = true

		if step, ok := current[id]; ok {
			steps = append(steps, step)
			continue
		}
		step, ok := registrySteps[id]
		if !ok {
			return response.NewValidationError(fmt.Sprintf("Unknown step: %s", id), "")
		}
		steps = append(steps, step)
		if _, ok := cfg.StepData[id]; !ok {
			if data, ok := defaults.StepData[id]; ok {
				if cfg.StepData == nil {
					cfg.StepData = make(map[string]domain.StepData)
				}
				cfg.StepData[id] = data
			}
		}
	}
	cfg.Steps = steps
	return nil
}

func applyStepPatch(cfg *domain.ProductConfig, stepID string, patch dto.StepPatch) error {
	data, hasData := cfg.StepData[stepID]
	if !hasData && !cfg.HasStep(stepID) {
		return response.NewValidationError(fmt.Sprintf("Unknown step: %s", stepID), "")
	}
	if !hasData {
		data = domain.StepData{StepID: stepID, SelectionType: domain.SelectionSingle, Options: []domain.Option{}}
	}

	if patch.Name != nil {
		for i := range cfg.Steps {
			if cfg.Steps[i].ID == stepID {
				cfg.Steps[i].Name = *patch.Name
			}
		}
	}
	if patch.Title != nil {
		data.Title = *patch.Title
	}
	if patch.Description != nil {
		data.Description = *patch.Description
	}
	if patch.Subtext != nil {
		data.Subtext = *patch.Subtext
	}
	if patch.ImageURL != nil {
		data.ImageURL = *patch.ImageURL
	}
	if patch.SelectionType != nil {
		data.SelectionType = domain.SelectionType(*patch.SelectionType)
	}
	if patch.Required != nil {
		data.Required = *patch.Required
	}
	if patch.Options != nil {
		seen := make(map[string]bool, len(*patch.Options))
		for _, opt := range *patch.Options {
			if opt.ID == "" {
				return response.NewValidationError(fmt.Sprintf("Option without id in step %s", stepID), "")
			}
			if seen[opt.ID] {
				return response.NewValidationError(fmt.Sprintf("Duplicate option %s in step %s", opt.ID, stepID), "")
			}
			if opt.Price < 0 {
				return response.NewValidationError(fmt.Sprintf("Negative price for option %s", opt.ID), "")
			}
			seen[opt.ID] = true
		}
		data.Options = append([]domain.Option{}, *patch.Options...)
	}

	if cfg.StepData == nil {
		cfg.StepData = make(map[string]domain.StepData)
	}
	cfg.StepData[stepID] = data
	return nil
}

func decodeRecord(record *domain.ProductConfigRecord) (*domain.ProductConfig, error) {
	cfg, err := record.ToProductConfig()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load product config", err.Error())
	}
	return cfg, nil
}

// humanizeProductID turns "cube-125" into "Cube 125"
func humanizeProductID(productID string) string {
	words := strings.Split(productID, "-")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
