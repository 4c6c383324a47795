package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"crosspromo/config"
	"crosspromo/internal/domain/entity"
	"crosspromo/internal/domain/service"
	"crosspromo/internal/errors"

	"github.com/gorilla/websocket"
)

const (
	handshakeTimeout = 10 * time.Second
	upstreamMaxSize  = 64 * 1024
)

// Connector dials the platform notification WebSocket for viewer sessions.
type Connector struct {
	url    string
	dialer *websocket.Dialer
	logger *slog.Logger
}

type connection struct {
	conn   *websocket.Conn
	logger *slog.Logger
	done   chan struct{}
	once   sync.Once
	err    error
}

// NewConnector returns nil when the channel is disabled; sessions then run without realtime
// notifications.
func NewConnector(cfg *config.Config, logger *slog.Logger) (service.RealtimeConnector, error) {
	if cfg.Realtime == nil || !cfg.Realtime.Enabled {
		logger.Info("Realtime notification channel disabled")

		return nil, nil //nolint:nilnil // disabled is not an error
	}

	u, err := url.Parse(cfg.Realtime.URL)
	if err != nil || (u.Scheme != "ws" && u.Scheme != "wss") || u.Host == "" {
		return nil, errors.Errorf("realtime url must be a ws:// or wss:// URL, got %q", cfg.Realtime.URL)
	}

	return &Connector{
		url: u.String(),
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
		logger: logger.With(slog.String("component", "realtime_connector")),
	}, nil
}

// Connect dials the channel and delivers events to handle from a background reader.
func (c *Connector) Connect(ctx context.Context, viewer entity.Viewer, handle func(entity.RealtimeEvent)) (service.RealtimeConnection, error) {
	header := http.Header{}
	if viewer.AccessToken != "" {
		header.Set("Authorization", "Bearer "+viewer.AccessToken)
	}

	conn, resp, err := c.dialer.DialContext(ctx, c.url, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial realtime channel")
	}

	rc := &connection{
		conn:   conn,
		logger: c.logger.With(slog.String("viewerID", viewer.ID)),
		done:   make(chan struct{}),
	}
	conn.SetReadLimit(upstreamMaxSize)

	go rc.readLoop(handle)

	return rc, nil
}

// Close closes the connection. It does not wait for the reader: the event handler may be
// blocked on the session that is closing this connection. Safe to call more than once.
func (rc *connection) Close() error {
	rc.once.Do(func() {
		_ = rc.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeWait))
		rc.err = rc.conn.Close()
	})

	return rc.err
}

func (rc *connection) readLoop(handle func(entity.RealtimeEvent)) {
	defer close(rc.done)

	for {
		_, data, err := rc.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				rc.logger.Warn("Realtime channel closed unexpectedly", slog.Any("error", err))
			}

			return
		}

		event, ok := decodeEvent(data)
		if !ok {
			rc.logger.Debug("Ignoring realtime message", slog.Int("bytes", len(data)))

			continue
		}

		handle(event)
	}
}

type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// decodeEvent accepts a flat event object or an {"event": ..., "data": {...}} envelope.
func decodeEvent(data []byte) (entity.RealtimeEvent, bool) {
	data = bytes.TrimSpace(data)

	var event entity.RealtimeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return entity.RealtimeEvent{}, false
	}

	if event.Type == "" {
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil || env.Event == "" {
			return entity.RealtimeEvent{}, false
		}
		if len(env.Data) > 0 && string(env.Data) != "null" {
			if err := json.Unmarshal(env.Data, &event); err != nil {
				return entity.RealtimeEvent{}, false
			}
		}
		event.Type = entity.RealtimeEventType(env.Event)
	}

	event.Type = entity.RealtimeEventType(strings.ToLower(strings.TrimSpace(string(event.Type))))

	return event, event.Type != ""
}
