package usecase

import (
	"context"

	"crosspromo/internal/domain/entity"
)

// RequestPartnershipInput represents the input for sending a partnership request
type RequestPartnershipInput struct {
	TargetStoreID string `json:"-"`
	// SelectedLocationIDs are the viewer's selection clicks in order. Selection is
	// single-choice, so the last one is the location the request is sent from.
	SelectedLocationIDs []string `json:"selectedLocationIds" validate:"dive,required"`
	Consent             bool     `json:"consent"`
}

// MapMarkers is the marker state of a viewer's map.
type MapMarkers struct {
	Markers []entity.PlacedMarker `json:"markers"`
	// Unplaced counts listed stores that have no coordinates.
	Unplaced int `json:"unplaced"`
}

// MarkerEventResult is the outcome of a marker event.
type MarkerEventResult struct {
	// Dialog is set when a click should open a dialog.
	Dialog  *entity.DialogIntent `json:"dialog,omitempty"`
	Markers *MapMarkers          `json:"markers"`
}

// PartnerUsecase defines the partner discovery and partnership workflow use cases
type PartnerUsecase interface {
	// GetPartnerView returns the viewer's current partner view, loading it on first use.
	GetPartnerView(ctx context.Context, viewer entity.Viewer) (*entity.PartnerView, error)

	// RefreshPartners fetches candidates and own locations again and rebuilds the view.
	RefreshPartners(ctx context.Context, viewer entity.Viewer) (*entity.PartnerView, error)

	// SetReferencePoint sets the point distances are measured from.
	SetReferencePoint(ctx context.Context, viewer entity.Viewer, point entity.Coordinates) (*entity.PartnerView, error)

	// RequestPartnership sends a partnership request to the target store.
	RequestPartnership(ctx context.Context, viewer entity.Viewer, input *RequestPartnershipInput) (*entity.PartnerView, error)

	// CancelPartnership ends an active partnership.
	CancelPartnership(ctx context.Context, viewer entity.Viewer, partnershipID string) (*entity.PartnerView, error)

	// GetMapMarkers returns the markers on the viewer's map.
	GetMapMarkers(ctx context.Context, viewer entity.Viewer) (*MapMarkers, error)

	// HandleMarkerEvent applies a click or hover event raised on a marker.
	HandleMarkerEvent(ctx context.Context, viewer entity.Viewer, event entity.MarkerEvent) (*MarkerEventResult, error)

	// CloseSession releases the viewer's map markers and realtime connection.
	CloseSession(ctx context.Context, viewerID string) error
}
