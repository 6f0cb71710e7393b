package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"sauna-configurator-api/internal/cache"
	"sauna-configurator-api/internal/metrics"
	"sauna-configurator-api/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// EventSettingsCurrent is sent once on connect with the version the client should hold
const EventSettingsCurrent = "settings.current"

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type settingsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// SettingsHub pushes global settings changes to every connected configurator
type SettingsHub struct {
	clients    map[*settingsClient]bool
	register   chan *settingsClient
	unregister chan *settingsClient
	done       chan struct{}
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

func NewSettingsHub(m *metrics.Metrics, logger *zap.Logger) *SettingsHub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsHub{
		clients:    make(map[*settingsClient]bool),
		register:   make(chan *settingsClient),
		unregister: make(chan *settingsClient),
		done:       make(chan struct{}),
		metrics:    m,
		logger:     logger,
	}
}

// Run fans events out to clients until ctx is done or events is closed.
// It must be called exactly once.
func (h *SettingsHub) Run(ctx context.Context, events <-chan cache.SettingsEvent) {
	defer func() {
		h.closeAll()
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.clients[client] = true
			h.updateSubscribers()

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.updateSubscribers()
			}

		case event, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				h.logger.Error("Failed to encode settings event", zap.Error(err))
				continue
			}
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.updateSubscribers()
			h.logger.Debug("Settings event broadcast",
				zap.Int64("version", event.Version),
				zap.Int("clients", len(h.clients)),
			)
		}
	}
}

func (h *SettingsHub) closeAll() {
	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
	h.updateSubscribers()
}

func (h *SettingsHub) updateSubscribers() {
	if h.metrics != nil {
		h.metrics.SetSettingsSubscribers(len(h.clients))
	}
}

type SettingsWSHandler struct {
	hub                   *SettingsHub
	globalSettingsService service.GlobalSettingsService
	logger                *zap.Logger
}

func NewSettingsWSHandler(hub *SettingsHub, globalSettingsService service.GlobalSettingsService, logger *zap.Logger) *SettingsWSHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsWSHandler{
		hub:                   hub,
		globalSettingsService: globalSettingsService,
		logger:                logger,
	}
}

// HandleSettingsWebSocket godoc
// @Summary      전역 설정 변경 구독
// @Description  WebSocket 으로 전역 설정 버전 변경을 수신합니다. 연결 직후 현재 버전을 settings.current 로 보냅니다
// @Tags         websocket
// @Success      101 {string} string "Switching Protocols"
// @Router       /settings/ws [get]
func (h *SettingsWSHandler) HandleSettingsWebSocket(c *gin.Context) {
	snapshot, err := h.globalSettingsService.Current(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection", zap.Error(err))
		return
	}

	client := &settingsClient{
		conn: conn,
		send: make(chan []byte, 16),
	}
	hello, _ := json.Marshal(cache.SettingsEvent{
		Type:     EventSettingsCurrent,
		Version:  snapshot.Version,
		Revision: snapshot.Revision,
	})
	client.send <- hello

	select {
	case h.hub.register <- client:
	case <-h.hub.done:
		conn.Close()
		return
	}

	go h.writePump(client)
	go h.readPump(client)
}

// readPump only drains control frames; clients never send data
func (h *SettingsWSHandler) readPump(client *settingsClient) {
	defer func() {
		select {
		case h.hub.unregister <- client:
		case <-h.hub.done:
		}
		client.conn.Close()
	}()

	client.conn.SetReadLimit(maxMessageSize)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("Settings websocket closed unexpectedly", zap.Error(err))
			}
			return
		}
	}
}

func (h *SettingsWSHandler) writePump(client *settingsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
