package service

import (
	"context"

	"crosspromo/internal/domain/entity"
)

// ToastSink displays short messages to a viewer. Calls are fire-and-forget: delivery
// failures are handled inside the sink and never reported to the caller.
type ToastSink interface {
	Notify(ctx context.Context, viewerID string, toast entity.Toast)
}

// PartnersNotifier tells a viewer's open dashboards that their partner lists changed
// outside of a request they made, so the dashboard reloads them.
type PartnersNotifier interface {
	PartnersUpdated(ctx context.Context, viewerID string)
}
