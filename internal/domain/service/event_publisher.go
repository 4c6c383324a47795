package service

import (
	"context"

	"crosspromo/internal/domain/entity"
)

// EventPublisher defines the interface for publishing partnership events to a message queue
type EventPublisher interface {
	// PublishPartnershipEvent publishes a partnership lifecycle event
	PublishPartnershipEvent(ctx context.Context, event *entity.PartnershipEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
