package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crosspromo/config"
	deliverycontext "crosspromo/internal/delivery/context"
	"crosspromo/internal/domain/entity"
	domainerrors "crosspromo/internal/domain/errors"
	"crosspromo/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testViewer = entity.Viewer{ID: "retailer-1", AccessToken: "token-123"}

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.Config{Backend: &config.BackendConfig{
		BaseURL: server.URL,
		Timeout: timeout,
	}}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	return client
}

func TestNewClient_Validation(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	_, err := NewClient(&config.Config{}, logger)
	assert.Error(t, err)

	_, err = NewClient(&config.Config{Backend: &config.BackendConfig{BaseURL: "ftp://example.com"}}, logger)
	assert.Error(t, err)
}

func TestClient_FetchCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/partners/candidates", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		assert.Equal(t, "40.500000", r.URL.Query().Get("lat"))
		assert.Equal(t, "-74.000000", r.URL.Query().Get("lng"))
		assert.Equal(t, "25", r.URL.Query().Get("radius"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"data":[
			{"_id":"a","store_name":"Bakery","latitude":40.51,"longitude":-74.0},
			{"store_name":"no id"},
			{"id":"b","storeName":"Books"}
		]}`)
	}, time.Second)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	stores, err := client.FetchCandidates(ctx, testViewer, service.CandidateQuery{
		Near:        &entity.Coordinates{Latitude: 40.5, Longitude: -74},
		RadiusMiles: 25,
	})
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "a", stores[0].ID)
	assert.NotNil(t, stores[0].Coordinates)
	assert.Equal(t, "b", stores[1].ID)
	assert.Nil(t, stores[1].Coordinates)
}

func TestClient_FetchOwnLocations(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stores/mine", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":"own-1","name":"My Shop","lat":40,"lng":-75}]`)
	}, time.Second)

	locations, err := client.FetchOwnLocations(context.Background(), testViewer)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "My Shop", locations[0].Name)
}

func TestClient_SendPartnershipRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/partners/store%2F7/request", r.URL.EscapedPath())
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body entity.PartnerRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "own-1", body.SenderLocationID)
		assert.Equal(t, "store/7", body.RecipientStoreID)
		assert.Equal(t, entity.RequestStatusPending, body.Status)

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"success":true}`)
	}, time.Second)

	require.NoError(t, client.SendPartnershipRequest(context.Background(), testViewer, "store/7", "own-1"))
}

func TestClient_CancelPartnership(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/partnerships/p-1/cancel", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}, time.Second)

	require.NoError(t, client.CancelPartnership(context.Background(), testViewer, "p-1"))
}

func TestClient_MutationsKeepOpaqueIDs(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c *Client) error
		wantPath string
		wantRaw  string
	}{
		{
			name:     "cancel id with space",
			call:     func(c *Client) error { return c.CancelPartnership(context.Background(), testViewer, "p 1") },
			wantPath: "/api/partnerships/p 1/cancel",
			wantRaw:  "/api/partnerships/p%201/cancel",
		},
		{
			name:     "request id with slash",
			call:     func(c *Client) error { return c.SendPartnershipRequest(context.Background(), testViewer, "store/7", "own") },
			wantPath: "/api/partners/store/7/request",
			wantRaw:  "/api/partners/store%2F7/request",
		},
		{
			name:     "request id with percent",
			call:     func(c *Client) error { return c.SendPartnershipRequest(context.Background(), testViewer, "50%off", "own") },
			wantPath: "/api/partners/50%off/request",
			wantRaw:  "/api/partners/50%25off/request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotRaw string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath, gotRaw = r.URL.Path, r.URL.EscapedPath()
				w.WriteHeader(http.StatusNoContent)
			}, time.Second)

			require.NoError(t, tt.call(client))
			assert.Equal(t, tt.wantPath, gotPath)
			assert.Equal(t, tt.wantRaw, gotRaw)
		})
	}
}

func TestClient_ResolveKeepsBasePath(t *testing.T) {
	client, err := NewClient(&config.Config{Backend: &config.BackendConfig{
		BaseURL: "https://platform.example.com/v2/",
	}}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	target, err := client.resolve(expandPath("/api/partnerships/{id}/cancel", "a/b"), nil)
	require.NoError(t, err)
	assert.Equal(t, "https://platform.example.com/v2/api/partnerships/a%2Fb/cancel", target)
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Run("non 2xx is rejected", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"message":"store is at its partnership limit"}`)
		}, time.Second)

		err := client.SendPartnershipRequest(context.Background(), testViewer, "a", "own-1")
		require.ErrorIs(t, err, domainerrors.ErrBackendRejected)
		assert.Contains(t, err.Error(), "partnership limit")
		assert.Equal(t, domainerrors.KindNetwork, domainerrors.KindOf(err))
	})

	t.Run("success false is rejected", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"success":false,"error":{"message":"duplicate request"}}`)
		}, time.Second)

		err := client.SendPartnershipRequest(context.Background(), testViewer, "a", "own-1")
		require.ErrorIs(t, err, domainerrors.ErrBackendRejected)
		assert.Contains(t, err.Error(), "duplicate request")
	})

	t.Run("unexpected list shape is rejected", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"message":"ok"}`)
		}, time.Second)

		_, err := client.FetchOwnLocations(context.Background(), testViewer)
		require.ErrorIs(t, err, domainerrors.ErrBackendRejected)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}, 50*time.Millisecond)
		defer close(release)

		_, err := client.FetchCandidates(context.Background(), testViewer, service.CandidateQuery{})
		require.ErrorIs(t, err, domainerrors.ErrBackendTimeout)
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		client, err := NewClient(&config.Config{Backend: &config.BackendConfig{BaseURL: url, Timeout: time.Second}}, slog.New(slog.DiscardHandler))
		require.NoError(t, err)

		err = client.CancelPartnership(context.Background(), testViewer, "p-1")
		require.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
	})
}
