package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Metric recording never panics, even when the underlying collector misbehaves
func TestMetricCollectionErrorHandling(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name      string
		operation func(*Metrics)
	}{
		{"RecordHTTPRequest", func(m *Metrics) { m.RecordHTTPRequest("GET", "/test", 200, time.Second) }},
		{"RecordDBQuery", func(m *Metrics) { m.RecordDBQuery("select", "product_configs", time.Millisecond, nil) }},
		{"RecordExternalAPICall", func(m *Metrics) { m.RecordExternalAPICall("/v1/products/1", "GET", 200, time.Second, nil) }},
		{"RecordResolution", func(m *Metrics) { m.RecordResolution("cube", SourceComputed, time.Millisecond) }},
		{"RecordCacheLookup", func(m *Metrics) { m.RecordCacheLookup("resolved", true) }},
		{"RecordSettingsUpdate", func(m *Metrics) { m.RecordSettingsUpdate(3) }},
		{"RecordPriceRefresh", func(m *Metrics) { m.RecordPriceRefresh("success") }},
		{"UpdateDBStats", func(m *Metrics) {
			m.UpdateDBStats(sql.DBStats{OpenConnections: 10, InUse: 5, Idle: 5})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewWithRegistry(prometheus.NewRegistry(), logger)

			assert.NotPanics(t, func() {
				tt.operation(m)
			})
		})
	}
}

func TestMetricCollectionContinuesAfterError(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/api/configurator/products/:productId/config", 200, 100*time.Millisecond)
		m.RecordDBQuery("insert", "product_configs", 20*time.Millisecond, errors.New("test error"))
		m.RecordExternalAPICall("/v1/products/123", "GET", 503, 50*time.Millisecond, nil)
		m.IncrementProductConfigSaved()
		m.IncrementSessionCreated()
	})
}

func TestSafeExecuteWithPanic(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())

	assert.NotPanics(t, func() {
		m.safeExecute("test_panic", func() {
			panic("intentional panic for testing")
		})
	})
}

func TestMetricsWithNilLogger(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), nil)

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/test", 200, time.Second)
		m.safeExecute("test_panic", func() { panic("boom") })
	})
}

func TestCollectorPanicRecovery(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	collector := &BusinessMetricsCollector{
		db:      nil,
		metrics: m,
		logger:  zap.NewNop(),
	}

	assert.NotPanics(t, func() {
		collector.collect()
	})
}
