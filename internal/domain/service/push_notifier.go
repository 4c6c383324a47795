package service

import "context"

// PushNotifier delivers toasts as push notifications to devices subscribed to a topic.
type PushNotifier interface {
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
