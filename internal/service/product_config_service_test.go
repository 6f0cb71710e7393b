package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sauna-configurator-api/internal/domain"
	"sauna-configurator-api/internal/dto"
	"sauna-configurator-api/internal/metrics"
	"sauna-configurator-api/internal/registry"
	"sauna-configurator-api/internal/response"
)

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *response.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func newTestMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestProductConfigService_GetProductConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("성공: first access creates the config from registry defaults", func(t *testing.T) {
		repo := newInMemoryProductRepo()
		svc := NewProductConfigService(repo, registry.Default(), newTestMetrics(), zap.NewNop())

		cfg, err := svc.GetProductConfig(ctx, "cube-125", nil)
		require.NoError(t, err)

		assert.Equal(t, "Cube 125", cfg.ProductName)
		assert.Equal(t, domain.FamilyCube, cfg.Family)
		assert.Equal(t, domain.PriceSourceManual, cfg.PriceSource)
		assert.True(t, cfg.HasStep(domain.StepHeater))
		assert.False(t, cfg.UpdatedAt.IsZero())

		again, err := svc.GetProductConfig(ctx, "cube-125", nil)
		require.NoError(t, err)
		assert.Equal(t, cfg.UpdatedAt, again.UpdatedAt)
	})

	t.Run("성공: explicit name and family win", func(t *testing.T) {
		svc := NewProductConfigService(newInMemoryProductRepo(), registry.Default(), nil, nil)

		cfg, err := svc.GetProductConfig(ctx, "model-7", &dto.CreateProductConfigQuery{Name: "Garden Barrel", Family: "aura"})
		require.NoError(t, err)
		assert.Equal(t, "Garden Barrel", cfg.ProductName)
		assert.Equal(t, domain.FamilyAura, cfg.Family)
	})

	t.Run("실패: malformed product id", func(t *testing.T) {
		svc := NewProductConfigService(newInMemoryProductRepo(), registry.Default(), nil, nil)

		_, err := svc.GetProductConfig(ctx, "Cube 125", nil)
		assertAppError(t, err, response.ErrCodeValidation)
	})

	t.Run("실패: repository error", func(t *testing.T) {
		repo := &MockProductConfigRepository{
			FindByIDFunc: func(ctx context.Context, productID string) (*domain.ProductConfigRecord, error) {
				return nil, errors.New("connection refused")
			},
		}
		svc := NewProductConfigService(repo, registry.Default(), nil, nil)

		_, err := svc.GetProductConfig(ctx, "cube-125", nil)
		assertAppError(t, err, response.ErrCodeInternal)
	})

	t.Run("실패: malformed stored JSON", func(t *testing.T) {
		repo := &MockProductConfigRepository{
			FindByIDFunc: func(ctx context.Context, productID string) (*domain.ProductConfigRecord, error) {
				return &domain.ProductConfigRecord{ProductID: productID, Steps: []byte(`{`)}, nil
			},
		}
		svc := NewProductConfigService(repo, registry.Default(), nil, nil)

		_, err := svc.GetProductConfig(ctx, "cube-125", nil)
		assertAppError(t, err, response.ErrCodeInternal)
	})
}

func TestProductConfigService_ReplaceProductConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("성공: replaces and fills step ids", func(t *testing.T) {
		svc := NewProductConfigService(newInMemoryProductRepo(), registry.Default(), nil, nil)

		cfg, err := svc.ReplaceProductConfig(ctx, "cube-125", []byte(`{
			"productName": "Cube 125",
			"steps": [{"id": "heater", "name": "Heater", "route": "/configurator/heater"}],
			"stepData": {"heater": {"selectionType": "single", "required": true, "options": [{"id": "kajo", "title": "Kajo 6.6kW (80kg)", "price": 1200}]}}
		}`))
		require.NoError(t, err)

		assert.Equal(t, "cube-125", cfg.ProductID)
		assert.Equal(t, "heater", cfg.StepData["heater"].StepID)
		assert.Equal(t, domain.PriceSourceManual, cfg.PriceSource)
	})

	t.Run("실패: schema violation", func(t *testing.T) {
		svc := NewProductConfigService(newInMemoryProductRepo(), registry.Default(), nil, nil)

		_, err := svc.ReplaceProductConfig(ctx, "cube-125", []byte(`{"productName":"Cube","steps":"heater","stepData":{}}`))
		assertAppError(t, err, response.ErrCodeValidation)
	})

	t.Run("실패: body id differs from path", func(t *testing.T) {
		svc := NewProductConfigService(newInMemoryProductRepo(), registry.Default(), nil, nil)

		_, err := svc.ReplaceProductConfig(ctx, "cube-125", []byte(`{"productId":"barrel-220","productName":"Barrel","steps":[],"stepData":{}}`))
		assertAppError(t, err, response.ErrCodeValidation)
	})
}

func TestProductConfigService_PatchProductConfig(t *testing.T) {
	ctx := context.Background()

	newSeeded := func(t *testing.T) ProductConfigService {
		svc := NewProductConfigService(newInMemoryProductRepo(), registry.Default(), nil, nil)
		_, err := svc.GetProductConfig(ctx, "cube-125", nil)
		require.NoError(t, err)
		return svc
	}

	t.Run("성공: scalar fields and step patches", func(t *testing.T) {
		svc := newSeeded(t)
		pipedriveID := int64(900)
		options := []domain.Option{{ID: "led", Title: "LED", Price: 10}}

		cfg, err := svc.PatchProductConfig(ctx, "cube-125", &dto.PatchProductConfigRequest{
			ProductName:            strPtr("Cube 125 Deluxe"),
			MainProductPipedriveID: &pipedriveID,
			PriceSource:            strPtr("pipedrive"),
			Steps: map[string]dto.StepPatch{
				"lighting": {Name: strPtr("Lights"), Title: strPtr("Pick your lights"), Options: &options},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "Cube 125 Deluxe", cfg.ProductName)
		assert.Equal(t, domain.PriceSourcePipedrive, cfg.PriceSource)
		assert.Equal(t, int64(900), *cfg.MainProductPipedriveID)
		assert.Equal(t, "Pick your lights", cfg.StepData["lighting"].Title)
		require.Len(t, cfg.StepData["lighting"].Options, 1)
		for _, step := range cfg.Steps {
			if step.ID == "lighting" {
				assert.Equal(t, "Lights", step.Name)
			}
		}
	})

	t.Run("성공: step order removes unlisted steps", func(t *testing.T) {
		svc := newSeeded(t)

		cfg, err := svc.PatchProductConfig(ctx, "cube-125", &dto.PatchProductConfigRequest{
			StepOrder: []string{"lighting", "heater", "quote"},
		})
		require.NoError(t, err)

		ids := make([]string, 0, len(cfg.Steps))
		for _, step := range cfg.Steps {
			ids = append(ids, step.ID)
		}
		assert.Equal(t, []string{"lighting", "heater", "quote"}, ids)
	})

	t.Run("실패: unknown step in order", func(t *testing.T) {
		svc := newSeeded(t)

		_, err := svc.PatchProductConfig(ctx, "cube-125", &dto.PatchProductConfigRequest{StepOrder: []string{"heater", "sauna-hat"}})
		assertAppError(t, err, response.ErrCodeValidation)
	})

	t.Run("실패: duplicate option ids", func(t *testing.T) {
		svc := newSeeded(t)
		options := []domain.Option{{ID: "led"}, {ID: "led"}}

		_, err := svc.PatchProductConfig(ctx, "cube-125", &dto.PatchProductConfigRequest{
			Steps: map[string]dto.StepPatch{"lighting": {Options: &options}},
		})
		assertAppError(t, err, response.ErrCodeValidation)
	})

	t.Run("실패: missing product", func(t *testing.T) {
		svc := NewProductConfigService(newInMemoryProductRepo(), registry.Default(), nil, nil)

		_, err := svc.PatchProductConfig(ctx, "nope", &dto.PatchProductConfigRequest{ProductName: strPtr("x")})
		assertAppError(t, err, response.ErrCodeNotFound)
	})
}

func TestProductConfigService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewProductConfigService(newInMemoryProductRepo(), registry.Default(), nil, nil)

	for _, id := range []string{"cube-125", "barrel-220"} {
		_, err := svc.GetProductConfig(ctx, id, nil)
		require.NoError(t, err)
	}

	list, err := svc.ListProductConfigs(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "barrel-220", list[0].ProductID)
	assert.Equal(t, "barrel", list[0].Family)

	require.NoError(t, svc.DeleteProductConfig(ctx, "barrel-220"))
	assertAppError(t, svc.DeleteProductConfig(ctx, "barrel-220"), response.ErrCodeNotFound)
}

func TestHumanizeProductID(t *testing.T) {
	assert.Equal(t, "Cube 125", humanizeProductID("cube-125"))
	assert.Equal(t, "Hiki S", humanizeProductID("hiki-s"))
	assert.Equal(t, "Aura", humanizeProductID("aura"))
}
