package pubsub

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"crosspromo/config"
	"crosspromo/internal/domain/entity"
	"crosspromo/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	t.Helper()

	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: slog.New(slog.DiscardHandler),
	}
}

func TestNewEventPublisher_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider: kafka"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(newParams(t, tt.cfg))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewEventPublisher_DisabledIsNoop(t *testing.T) {
	publisher, err := NewEventPublisher(newParams(t, nil))
	require.NoError(t, err)

	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishPartnershipEvent(context.Background(), &entity.PartnershipEvent{EventID: "evt-1"}))
}

func TestNewEventPublisher_CountsOutcomes(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusNoContent)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(int(status.Load()))
	}))
	defer server.Close()

	publisher, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: "local", LocalEndpoint: server.URL}))
	require.NoError(t, err)

	eventType := string(entity.PartnershipEventCancelled)
	success := metrics.EventsPublished.WithLabelValues("local", eventType, metrics.OutcomeSuccess)
	failure := metrics.EventsPublished.WithLabelValues("local", eventType, metrics.OutcomeFailure)
	successBefore, failureBefore := testutil.ToFloat64(success), testutil.ToFloat64(failure)

	event := &entity.PartnershipEvent{EventID: "evt-1", Type: entity.PartnershipEventCancelled, ViewerID: "viewer-1"}
	require.NoError(t, publisher.PublishPartnershipEvent(context.Background(), event))

	status.Store(http.StatusInternalServerError)
	require.Error(t, publisher.PublishPartnershipEvent(context.Background(), event))

	assert.InDelta(t, successBefore+1, testutil.ToFloat64(success), 0)
	assert.InDelta(t, failureBefore+1, testutil.ToFloat64(failure), 0)
}
