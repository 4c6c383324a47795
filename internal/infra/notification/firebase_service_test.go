package notification

import (
	"context"
	"log/slog"
	"testing"

	"crosspromo/config"
	"crosspromo/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	messages []*messaging.Message
	err      error
}

func (r *recordingSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	r.messages = append(r.messages, message)

	return "projects/test/messages/1", r.err
}

func TestNewFirebaseService_DisabledWithoutCredentials(t *testing.T) {
	notifier, err := NewFirebaseService(context.Background(), &config.Config{}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.Nil(t, notifier)
}

func TestFirebaseService_SendToTopic(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		sender := &recordingSender{}
		svc := &firebaseService{client: sender}

		err := svc.SendToTopic(context.Background(), "viewer_v1", "Partner offers", "Partnership request sent", map[string]string{"level": "success"})
		require.NoError(t, err)

		require.Len(t, sender.messages, 1)
		msg := sender.messages[0]
		assert.Equal(t, "viewer_v1", msg.Topic)
		assert.Equal(t, "Partnership request sent", msg.Notification.Body)
		assert.Equal(t, "success", msg.Data["level"])
	})

	t.Run("send error", func(t *testing.T) {
		sendErr := errors.New("unavailable")
		svc := &firebaseService{client: &recordingSender{err: sendErr}}

		err := svc.SendToTopic(context.Background(), "viewer_v1", "t", "b", nil)
		assert.True(t, errors.Is(err, sendErr))
	})

	t.Run("empty topic", func(t *testing.T) {
		sender := &recordingSender{}
		svc := &firebaseService{client: sender}

		assert.Error(t, svc.SendToTopic(context.Background(), "", "t", "b", nil))
		assert.Empty(t, sender.messages)
	})
}
