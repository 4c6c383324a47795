// Package realtime carries notifications in both directions: the hub pushes frames to the
// dashboard's browser connections and the connector listens on the platform's notification
// channel for each viewer session.
package realtime

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"crosspromo/config"
	"crosspromo/internal/domain/entity"
	"crosspromo/internal/errors"
	"crosspromo/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4 * 1024
	sendBuffer     = 64
)

// FrameType names a frame pushed to the browser.
type FrameType string

const (
	FrameToast          FrameType = "toast"
	FramePartnersUpdate FrameType = "partners_updated"
)

// Frame is a message pushed to a browser connection.
type Frame struct {
	Type  FrameType     `json:"type"`
	Toast *entity.Toast `json:"toast,omitempty"`
}

// Hub keeps the browser WebSocket connections of every viewer.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu      sync.Mutex
	clients map[string]map[*client]struct{}
	closed  bool
}

type client struct {
	id       string
	viewerID string
	conn     *websocket.Conn
	send     chan []byte
	once     sync.Once
}

// NewHub creates a hub whose upgrader accepts the configured dashboard origins.
func NewHub(cfg *config.Config, logger *slog.Logger) *Hub {
	allowed := make(map[string]struct{}, len(cfg.HTTP.AllowOrigins))
	allowAll := false
	for _, origin := range cfg.HTTP.AllowOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = struct{}{}
	}

	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || allowAll {
					return true
				}
				_, ok := allowed[origin]

				return ok
			},
		},
		logger:  logger.With(slog.String("component", "realtime_hub")),
		clients: make(map[string]map[*client]struct{}),
	}
}

// Serve upgrades the request and pumps frames to the browser until it disconnects.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, viewerID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return errors.Wrap(err, "failed to upgrade connection")
	}

	c := &client{
		id:       uuid.NewString(),
		viewerID: viewerID,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
	}

	if !h.register(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))

		return conn.Close()
	}

	go h.writePump(c)
	h.readPump(c)

	return nil
}

// SendToViewer queues the frame on every connection of the viewer and returns how many
// connections accepted it. Full buffers drop the frame.
func (h *Hub) SendToViewer(viewerID string, frame Frame) int {
	data, err := json.Marshal(frame)
	if err != nil {
		h.logger.Error("Failed to marshal frame", slog.Any("error", err))

		return 0
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for c := range h.clients[viewerID] {
		select {
		case c.send <- data:
			delivered++
		default:
			h.logger.Warn("Client send buffer full, dropping frame",
				slog.String("client", c.id),
				slog.String("viewerID", viewerID),
			)
		}
	}

	return delivered
}

// ConnectionCount returns the number of open connections of the viewer.
func (h *Hub) ConnectionCount(viewerID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients[viewerID])
}

// Close disconnects every browser and rejects new connections.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	conns := make([]*websocket.Conn, 0)
	for _, set := range h.clients {
		for c := range set {
			conns = append(conns, c.conn)
		}
	}
	h.mu.Unlock()

	for _, conn := range conns {
		_ = conn.Close()
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}

	set, ok := h.clients[c.viewerID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[c.viewerID] = set
	}
	set[c] = struct{}{}
	metrics.RealtimeConnections.Inc()

	h.logger.Debug("Browser connected", slog.String("client", c.id), slog.String("viewerID", c.viewerID))

	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.clients[c.viewerID]
	if _, ok := set[c]; !ok {
		return
	}

	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.viewerID)
	}
	c.once.Do(func() { close(c.send) })
	metrics.RealtimeConnections.Dec()

	h.logger.Debug("Browser disconnected", slog.String("client", c.id), slog.String("viewerID", c.viewerID))
}

// readPump only drains control frames; the browser never sends data.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Browser connection read error", slog.String("client", c.id), slog.Any("error", err))
			}

			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
