package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sauna-configurator-api/internal/metrics"
)

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_token") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/v1/products/11"):
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":11,"name":"Kajo","tax":20,"prices":[{"currency":"EUR","price":560},{"currency":"GBP","price":499}]}}`))
		case strings.HasSuffix(r.URL.Path, "/v1/products/12"):
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":12,"name":"Stones","tax":20,"prices":[{"currency":"EUR","price":30}]}}`))
		case strings.HasSuffix(r.URL.Path, "/v1/products/13"):
			_, _ = w.Write([]byte(`{not json`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false}`))
		}
	}))
}

func TestCatalogClient_GetPrices(t *testing.T) {
	server := newCatalogServer(t)
	defer server.Close()

	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())

	t.Run("성공: returns prices in the configured currency", func(t *testing.T) {
		c := NewCatalogClient(server.URL, "secret", "GBP", time.Second, zap.NewNop(), m)

		prices, err := c.GetPrices(context.Background(), []int64{11})
		require.NoError(t, err)
		require.Contains(t, prices, int64(11))
		assert.Equal(t, 499.0, prices[11].Price)
		assert.Equal(t, "GBP", prices[11].Currency)
		assert.Equal(t, 20.0, prices[11].TaxRate)
	})

	t.Run("성공: failing products are skipped", func(t *testing.T) {
		c := NewCatalogClient(server.URL, "secret", "GBP", time.Second, zap.NewNop(), m)

		prices, err := c.GetPrices(context.Background(), []int64{11, 12, 13, 99})
		require.NoError(t, err)
		assert.Len(t, prices, 1)
		assert.Contains(t, prices, int64(11))
	})

	t.Run("성공: bad token degrades to no prices", func(t *testing.T) {
		c := NewCatalogClient(server.URL, "wrong", "GBP", time.Second, nil, nil)

		prices, err := c.GetPrices(context.Background(), []int64{11})
		require.NoError(t, err)
		assert.Empty(t, prices)
	})

	t.Run("실패: cancelled context", func(t *testing.T) {
		c := NewCatalogClient(server.URL, "secret", "GBP", time.Second, nil, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.GetPrices(ctx, []int64{11})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNoOpCatalogClient(t *testing.T) {
	prices, err := NewNoOpCatalogClient().GetPrices(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Empty(t, prices)
}
