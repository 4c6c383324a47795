package realtime

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crosspromo/config"
	"crosspromo/internal/domain/entity"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnector(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("disabled", func(t *testing.T) {
		connector, err := NewConnector(&config.Config{Realtime: &config.RealtimeConfig{URL: "wss://x"}}, logger)
		require.NoError(t, err)
		assert.Nil(t, connector)
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := NewConnector(&config.Config{Realtime: &config.RealtimeConfig{Enabled: true, URL: "https://x"}}, logger)
		assert.Error(t, err)
	})
}

func TestConnector_Connect(t *testing.T) {
	upgrader := websocket.Upgrader{}
	authHeader := make(chan string, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader <- r.Header.Get("Authorization")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		messages := []string{
			`{"type":"partnership_accepted","storeId":"s1","storeName":"Bakery A"}`,
			`not json`,
			`{"hello":"world"}`,
			`{"event":"Partner_Request_Received","data":{"storeId":"s2","storeName":"Books B"}}`,
		}
		for _, msg := range messages {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return
			}
		}

		// hold the connection until the client closes it
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	cfg := &config.Config{Realtime: &config.RealtimeConfig{
		Enabled: true,
		URL:     "ws" + strings.TrimPrefix(srv.URL, "http") + "/notifications",
	}}
	connector, err := NewConnector(cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	events := make(chan entity.RealtimeEvent, 4)
	conn, err := connector.Connect(context.Background(), entity.Viewer{ID: "v1", AccessToken: "tok"}, func(event entity.RealtimeEvent) {
		events <- event
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", <-authHeader)

	var received []entity.RealtimeEvent
	for len(received) < 2 {
		select {
		case event := <-events:
			received = append(received, event)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for events, got %d", len(received))
		}
	}

	assert.Equal(t, entity.RealtimeEvent{Type: entity.RealtimePartnershipAccepted, StoreID: "s1", StoreName: "Bakery A"}, received[0])
	assert.Equal(t, entity.RealtimeEvent{Type: entity.RealtimePartnerRequestReceived, StoreID: "s2", StoreName: "Books B"}, received[1])

	require.NoError(t, conn.Close())
	assert.NoError(t, conn.Close())

	rc := conn.(*connection)
	select {
	case <-rc.done:
	case <-time.After(2 * time.Second):
		t.Fatal("reader did not stop after Close")
	}
}

func TestDecodeEvent(t *testing.T) {
	event, ok := decodeEvent([]byte(`{"event":"partnership_cancelled"}`))
	require.True(t, ok)
	assert.Equal(t, entity.RealtimePartnershipCancelled, event.Type)

	_, ok = decodeEvent([]byte(`{"event":"x","data":"oops"}`))
	assert.False(t, ok)

	_, ok = decodeEvent([]byte(`[]`))
	assert.False(t, ok)
}
