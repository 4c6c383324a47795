package service

import (
	"context"

	"crosspromo/internal/domain/entity"
)

// RealtimeConnector opens the platform notification channel for a viewer.
type RealtimeConnector interface {
	// Connect dials the channel with the viewer's credentials. ctx bounds the dial only;
	// handle is called for every event received until the connection is closed.
	Connect(ctx context.Context, viewer entity.Viewer, handle func(entity.RealtimeEvent)) (RealtimeConnection, error)
}

// RealtimeConnection is an open notification channel owned by a viewer session.
type RealtimeConnection interface {
	Close() error
}
