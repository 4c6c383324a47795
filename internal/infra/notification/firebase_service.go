// Package notification sends toasts to the retailer's mobile devices through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"
	"strings"

	"crosspromo/config"
	"crosspromo/internal/domain/service"
	"crosspromo/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
}

// NewFirebaseService creates a Firebase push notifier. It returns nil when no credentials
// are configured, which disables push delivery of toasts.
func NewFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushNotifier, error) {
	if cfg.Firebase == nil || strings.TrimSpace(cfg.Firebase.CredentialsPath) == "" {
		logger.Info("Firebase credentials not configured, push toasts disabled")

		return nil, nil //nolint:nilnil // disabled is not an error
	}

	var appCfg *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendToTopic sends a push notification to every device subscribed to topic
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	if topic == "" {
		return errors.New("topic is required")
	}

	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	return nil
}
