package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sauna-configurator-api/internal/domain"
	"sauna-configurator-api/internal/dto"
	"sauna-configurator-api/internal/registry"
	"sauna-configurator-api/internal/response"
)

func setupAdminRouter(products *MockProductConfigService, settings *MockGlobalSettingsService) *gin.Engine {
	h := NewAdminHandler(products, settings, registry.Default(), zap.NewNop())
	r := gin.New()
	admin := r.Group("/admin")
	admin.GET("/products", h.ListProductConfigs)
	admin.GET("/products/:productId", h.GetProductConfig)
	admin.PUT("/products/:productId", h.ReplaceProductConfig)
	admin.PATCH("/products/:productId", h.PatchProductConfig)
	admin.DELETE("/products/:productId", h.DeleteProductConfig)
	admin.GET("/global-settings", h.GetGlobalSettings)
	admin.PUT("/global-settings", h.ReplaceGlobalSettings)
	admin.PATCH("/global-settings", h.PatchGlobalSettings)
	admin.GET("/registry/:family", h.GetRegistry)
	return r
}

func TestAdminHandler_ListProductConfigs(t *testing.T) {
	t.Run("성공: lists summaries", func(t *testing.T) {
		products := &MockProductConfigService{
			ListProductConfigsFunc: func(ctx context.Context) ([]dto.ProductConfigSummary, error) {
				return []dto.ProductConfigSummary{
					{ProductID: "barrel-220", Family: "barrel", StepCount: 7},
					{ProductID: "cube-125", Family: "cube", StepCount: 7},
				}, nil
			},
		}
		w := performRequest(setupAdminRouter(products, &MockGlobalSettingsService{}), http.MethodGet, "/admin/products", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var summaries []dto.ProductConfigSummary
		decodeData(t, w, &summaries)
		require.Len(t, summaries, 2)
		assert.Equal(t, "barrel-220", summaries[0].ProductID)
	})

	t.Run("실패: repository error maps to 500", func(t *testing.T) {
		products := &MockProductConfigService{
			ListProductConfigsFunc: func(ctx context.Context) ([]dto.ProductConfigSummary, error) {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch product configs", "db down")
			},
		}
		w := performRequest(setupAdminRouter(products, &MockGlobalSettingsService{}), http.MethodGet, "/admin/products", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, response.ErrCodeInternal, errorCode(t, w))
	})
}

func TestAdminHandler_GetProductConfig(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockService    func(*MockProductConfigService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "성공: passes creation query to the service",
			path: "/admin/products/model-7?name=Garden%20Barrel&family=barrel",
			mockService: func(m *MockProductConfigService) {
				m.GetProductConfigFunc = func(ctx context.Context, productID string, query *dto.CreateProductConfigQuery) (*domain.ProductConfig, error) {
					if productID != "model-7" || query.Name != "Garden Barrel" || query.Family != "barrel" {
						return nil, errors.New("unexpected arguments")
					}
					return &domain.ProductConfig{ProductID: productID, ProductName: query.Name, Family: domain.FamilyBarrel}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "실패: uppercase product id",
			path:           "/admin/products/Cube-125",
			mockService:    func(m *MockProductConfigService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   response.ErrCodeValidation,
		},
		{
			name:           "실패: unknown family in query",
			path:           "/admin/products/cube-125?family=igloo",
			mockService:    func(m *MockProductConfigService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   response.ErrCodeValidation,
		},
		{
			name: "실패: undecodable stored config",
			path: "/admin/products/cube-125",
			mockService: func(m *MockProductConfigService) {
				m.GetProductConfigFunc = func(ctx context.Context, productID string, query *dto.CreateProductConfigQuery) (*domain.ProductConfig, error) {
					return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode product config", "invalid character")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   response.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := &MockProductConfigService{}
			tt.mockService(products)

			w := performRequest(setupAdminRouter(products, &MockGlobalSettingsService{}), http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, w))
			}
		})
	}
}

func TestAdminHandler_ReplaceProductConfig(t *testing.T) {
	t.Run("성공: forwards the raw body", func(t *testing.T) {
		var received string
		products := &MockProductConfigService{
			ReplaceProductConfigFunc: func(ctx context.Context, productID string, raw []byte) (*domain.ProductConfig, error) {
				received = string(raw)
				return &domain.ProductConfig{ProductID: productID}, nil
			},
		}
		body := `{"productId":"cube-125","steps":[],"stepData":{}}`
		w := performRequest(setupAdminRouter(products, &MockGlobalSettingsService{}), http.MethodPut, "/admin/products/cube-125", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, body, received)
	})

	t.Run("실패: empty body", func(t *testing.T) {
		w := performRequest(setupAdminRouter(&MockProductConfigService{}, &MockGlobalSettingsService{}), http.MethodPut, "/admin/products/cube-125", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("실패: schema violation maps to 400", func(t *testing.T) {
		products := &MockProductConfigService{
			ReplaceProductConfigFunc: func(ctx context.Context, productID string, raw []byte) (*domain.ProductConfig, error) {
				return nil, response.NewValidationError("Product config does not match schema", "/steps: expected array")
			},
		}
		w := performRequest(setupAdminRouter(products, &MockGlobalSettingsService{}), http.MethodPut, "/admin/products/cube-125", `{"steps":{}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.ErrCodeValidation, errorCode(t, w))
	})
}

func TestAdminHandler_PatchProductConfig(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		called         bool
	}{
		{
			name:           "성공: step order and step patch",
			body:           `{"stepOrder":["heater","delivery"],"steps":{"heater":{"name":"Heaters","selectionType":"single"}},"priceSource":"pipedrive"}`,
			expectedStatus: http.StatusOK,
			called:         true,
		},
		{
			name:           "실패: invalid step id in order",
			body:           `{"stepOrder":["Heater"]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "실패: invalid step id key",
			body:           `{"steps":{"Rear Wall":{"name":"x"}}}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "실패: unknown selection type",
			body:           `{"steps":{"heater":{"selectionType":"several"}}}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "실패: unknown price source",
			body:           `{"priceSource":"guess"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "실패: malformed JSON",
			body:           `{"productName":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			products := &MockProductConfigService{
				PatchProductConfigFunc: func(ctx context.Context, productID string, req *dto.PatchProductConfigRequest) (*domain.ProductConfig, error) {
					called = true
					return &domain.ProductConfig{ProductID: productID}, nil
				},
			}

			w := performRequest(setupAdminRouter(products, &MockGlobalSettingsService{}), http.MethodPatch, "/admin/products/cube-125", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			assert.Equal(t, tt.called, called)
		})
	}
}

func TestAdminHandler_DeleteProductConfig(t *testing.T) {
	t.Run("성공: 204", func(t *testing.T) {
		w := performRequest(setupAdminRouter(&MockProductConfigService{}, &MockGlobalSettingsService{}), http.MethodDelete, "/admin/products/cube-125", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("실패: missing config maps to 404", func(t *testing.T) {
		products := &MockProductConfigService{
			DeleteProductConfigFunc: func(ctx context.Context, productID string) error {
				return gorm.ErrRecordNotFound
			},
		}
		w := performRequest(setupAdminRouter(products, &MockGlobalSettingsService{}), http.MethodDelete, "/admin/products/cube-125", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, response.ErrCodeNotFound, errorCode(t, w))
	})
}

func TestAdminHandler_GlobalSettings(t *testing.T) {
	revision := uuid.New()

	t.Run("성공: get returns the snapshot", func(t *testing.T) {
		settings := &MockGlobalSettingsService{
			CurrentFunc: func(ctx context.Context) (*domain.SettingsSnapshot, error) {
				return &domain.SettingsSnapshot{
					Version:  4,
					Revision: revision,
					Settings: domain.GlobalSettings{StepNames: map[string]string{"heater": "Heaters"}},
				}, nil
			},
		}
		w := performRequest(setupAdminRouter(&MockProductConfigService{}, settings), http.MethodGet, "/admin/global-settings", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var snapshot domain.SettingsSnapshot
		decodeData(t, w, &snapshot)
		assert.Equal(t, int64(4), snapshot.Version)
		assert.Equal(t, revision, snapshot.Revision)
		assert.Equal(t, "Heaters", snapshot.Settings.StepNames["heater"])
	})

	t.Run("성공: put forwards the raw body", func(t *testing.T) {
		var received string
		settings := &MockGlobalSettingsService{
			ReplaceSettingsFunc: func(ctx context.Context, raw []byte) (*domain.SettingsSnapshot, error) {
				received = string(raw)
				return &domain.SettingsSnapshot{Version: 5}, nil
			},
		}
		body := `{"optionTitles":{"aava-4-7kw":"Aava 4.7"}}`
		w := performRequest(setupAdminRouter(&MockProductConfigService{}, settings), http.MethodPut, "/admin/global-settings", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, body, received)
	})

	t.Run("성공: patch binds maps and removals", func(t *testing.T) {
		var received *dto.PatchGlobalSettingsRequest
		settings := &MockGlobalSettingsService{
			PatchSettingsFunc: func(ctx context.Context, req *dto.PatchGlobalSettingsRequest) (*domain.SettingsSnapshot, error) {
				received = req
				return &domain.SettingsSnapshot{Version: 6}, nil
			},
		}
		body := `{"stepImages":{"heater":"/heater.jpg"},"remove":{"optionTitles":["aava-4-7kw"]}}`
		w := performRequest(setupAdminRouter(&MockProductConfigService{}, settings), http.MethodPatch, "/admin/global-settings", body)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, received)
		assert.Equal(t, "/heater.jpg", received.StepImages["heater"])
		assert.Equal(t, []string{"aava-4-7kw"}, received.Remove["optionTitles"])
	})

	t.Run("실패: put rejected by schema", func(t *testing.T) {
		settings := &MockGlobalSettingsService{
			ReplaceSettingsFunc: func(ctx context.Context, raw []byte) (*domain.SettingsSnapshot, error) {
				return nil, response.NewValidationError("Global settings do not match schema", "additionalProperties 'bogus' not allowed")
			},
		}
		w := performRequest(setupAdminRouter(&MockProductConfigService{}, settings), http.MethodPut, "/admin/global-settings", `{"bogus":{}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandler_GetRegistry(t *testing.T) {
	r := setupAdminRouter(&MockProductConfigService{}, &MockGlobalSettingsService{})

	t.Run("성공: cube defaults", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/admin/registry/cube", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.RegistryResponse
		decodeData(t, w, &resp)
		assert.Equal(t, "cube", resp.Family)
		assert.NotEmpty(t, resp.Steps)
		assert.Contains(t, resp.StepData, domain.StepHeater)
	})

	t.Run("성공: default family", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/admin/registry/default", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("실패: unknown family", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/admin/registry/igloo", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
