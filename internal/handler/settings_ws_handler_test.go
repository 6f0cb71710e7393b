package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sauna-configurator-api/internal/cache"
	"sauna-configurator-api/internal/domain"
	"sauna-configurator-api/internal/metrics"
)

func readEvent(t *testing.T, conn *websocket.Conn) cache.SettingsEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	var event cache.SettingsEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	return event
}

func gaugeValue(g prometheus.Gauge) float64 {
	var metric dto.Metric
	if err := g.Write(&metric); err != nil {
		return -1
	}
	return metric.GetGauge().GetValue()
}

func TestSettingsWSHandler_PushesSettingsChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	revision := uuid.New()
	settings := &MockGlobalSettingsService{
		CurrentFunc: func(ctx context.Context) (*domain.SettingsSnapshot, error) {
			return &domain.SettingsSnapshot{Version: 2, Revision: revision}, nil
		},
	}

	events := make(chan cache.SettingsEvent, 1)
	hub := NewSettingsHub(m, zap.NewNop())
	go hub.Run(ctx, events)

	h := NewSettingsWSHandler(hub, settings, zap.NewNop())
	r := gin.New()
	r.GET("/settings/ws", h.HandleSettingsWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/settings/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	t.Run("성공: current version on connect", func(t *testing.T) {
		hello := readEvent(t, conn)
		assert.Equal(t, EventSettingsCurrent, hello.Type)
		assert.Equal(t, int64(2), hello.Version)
		assert.Equal(t, revision, hello.Revision)
		assert.Eventually(t, func() bool {
			return gaugeValue(m.SettingsSubscribers) == 1
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("성공: broadcast of a new version", func(t *testing.T) {
		next := uuid.New()
		events <- cache.SettingsEvent{Type: cache.EventSettingsUpdated, Version: 3, Revision: next}

		event := readEvent(t, conn)
		assert.Equal(t, cache.EventSettingsUpdated, event.Type)
		assert.Equal(t, int64(3), event.Version)
		assert.Equal(t, next, event.Revision)
	})

	t.Run("성공: hub shutdown closes the connection", func(t *testing.T) {
		cancel()
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, _, err := conn.ReadMessage()
		assert.Error(t, err)
	})
}
