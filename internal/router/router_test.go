package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sauna-configurator-api/internal/database"
	"sauna-configurator-api/internal/metrics"
	"sauna-configurator-api/internal/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validation.RegisterBindingValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// setupTestRouter creates a test router on an in-memory SQLite database
func setupTestRouter(t *testing.T, basePath string, m *metrics.Metrics) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return Setup(Config{
		Context:     ctx,
		DB:          db,
		Logger:      zap.NewNop(),
		BasePath:    basePath,
		Metrics:     m,
		CORSOrigins: []string{"*"},
	})
}

func newMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	require.True(t, envelope.Success, w.Body.String())
	return envelope.Data
}

// TestMetricsEndpoint_RootPath tests /metrics endpoint at root path
func TestMetricsEndpoint_RootPath(t *testing.T) {
	router := setupTestRouter(t, "", newMetrics())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Expected status 200")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	body := w.Body.String()
	assert.Contains(t, body, "# HELP")
	assert.Contains(t, body, "# TYPE")
	assert.Contains(t, body, "go_goroutines", "Response should contain Go runtime metrics")
}

// TestMetricsEndpoint_WithBasePath tests /metrics endpoint with base path configured
func TestMetricsEndpoint_WithBasePath(t *testing.T) {
	basePath := "/api/configurator"
	router := setupTestRouter(t, basePath, newMetrics())

	for _, path := range []string{"/metrics", basePath + "/metrics"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		})
	}
}

// TestMetricsEndpoint_ContainsAllMetrics tests that gauges and counters are registered up front
func TestMetricsEndpoint_ContainsAllMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	_ = metrics.NewWithRegistry(registry, zap.NewNop())

	metricFamilies, err := registry.Gather()
	require.NoError(t, err)

	metricNames := make(map[string]bool)
	for _, mf := range metricFamilies {
		metricNames[mf.GetName()] = true
	}

	for _, metric := range []string{
		"configurator_service_db_connections_open",
		"configurator_service_db_connections_in_use",
		"configurator_service_db_connections_idle",
		"configurator_service_db_connections_max",
		"configurator_service_db_connection_wait_total",
		"configurator_service_product_configs_total",
		"configurator_service_product_config_saved_total",
		"configurator_service_settings_version",
		"configurator_service_settings_updated_total",
		"configurator_service_sessions_created_total",
		"configurator_service_settings_subscribers",
	} {
		assert.True(t, metricNames[metric], "Registry should contain metric: %s", metric)
	}
}

func TestHealthEndpoints(t *testing.T) {
	basePath := "/api/configurator"
	router := setupTestRouter(t, basePath, newMetrics())

	for _, path := range []string{"/health", "/ready", basePath + "/health", basePath + "/ready"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

// TestConfiguratorFlow drives admin edits and a customer session through the full stack
func TestConfiguratorFlow(t *testing.T) {
	basePath := "/api/configurator"
	router := setupTestRouter(t, basePath, newMetrics())

	t.Run("성공: resolved config for a new cube product", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, basePath+"/products/cube-125/config", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := decode(t, w)
		assert.Equal(t, "cube-125", data["productId"])
		assert.Equal(t, false, data["empty"])

		steps := data["steps"].([]interface{})
		ids := make([]string, 0, len(steps))
		for _, s := range steps {
			ids = append(ids, s.(map[string]interface{})["id"].(string))
		}
		assert.NotContains(t, ids, "stones")
		assert.Equal(t, "quote", ids[len(ids)-1])
		assert.Equal(t, "delivery", ids[len(ids)-2])

		rear := data["stepData"].(map[string]interface{})["rear-glass-wall"].(map[string]interface{})
		for _, o := range rear["options"].([]interface{}) {
			assert.NotEqual(t, "full-glass-backwall", o.(map[string]interface{})["id"])
		}
	})

	t.Run("성공: global step name shows up in the resolved config", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPatch, basePath+"/admin/global-settings", map[string]interface{}{
			"stepNames": map[string]string{"heater": "Choose your heater"},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, float64(1), decode(t, w)["version"])

		w = doJSON(t, router, http.MethodGet, basePath+"/products/cube-125/config", nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)
		assert.Equal(t, float64(1), data["settingsVersion"])
		heater := data["stepData"].(map[string]interface{})["heater"].(map[string]interface{})
		assert.Equal(t, "Choose your heater", heater["title"])
	})

	t.Run("실패: schema rejects malformed product config", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, basePath+"/admin/products/cube-125", strings.NewReader(`{"steps":"heater"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	t.Run("성공: session progress with heater stones", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, basePath+"/sessions", map[string]string{"productId": "cube-125"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		sessionID := decode(t, w)["id"].(string)

		w = doJSON(t, router, http.MethodPut, basePath+"/sessions/"+sessionID+"/steps/heater",
			map[string][]string{"optionIds": {"aava-4-7kw", "kajo-6-6kw"}})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		selections := decode(t, w)["selections"].(map[string]interface{})
		assert.Equal(t, []interface{}{"kajo-6-6kw"}, selections["heater"])

		w = doJSON(t, router, http.MethodGet, basePath+"/sessions/"+sessionID+"/progress", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		progress := decode(t, w)
		assert.Equal(t, false, progress["complete"])
		stones := progress["heaterStones"].(map[string]interface{})
		assert.Equal(t, float64(4), stones["packagesNeeded"])

		w = doJSON(t, router, http.MethodGet, basePath+"/sessions/"+sessionID+"/prices", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var according map[string]interface{}
		for _, o := range decode(t, w)["options"].([]interface{}) {
			if line := o.(map[string]interface{}); line["optionId"] == "stones-according-to-heater" {
				according = line
			}
		}
		require.NotNil(t, according)
		assert.Equal(t, float64(118), according["price"])
		assert.Equal(t, "heater", according["source"])
	})

	t.Run("실패: unknown session", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, basePath+"/sessions/6f1c2d9e-3b7a-4c1e-9d2f-0a1b2c3d4e5f", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("성공: registry defaults", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, basePath+"/admin/registry/barrel", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "barrel", decode(t, w)["family"])
	})
}
