package service

import "crosspromo/internal/domain/entity"

// MapSurface is a map bound to one viewer's dashboard. Markers are added at coordinates
// with typed content and receive DOM-style events through Dispatch.
type MapSurface interface {
	// AddMarker places a new marker on the surface.
	AddMarker(at entity.Coordinates, view entity.MarkerView) (Marker, error)

	// Dispatch delivers a browser event to the listeners of the targeted marker.
	// It reports false when no marker exists for the event's store id.
	Dispatch(event entity.MarkerEvent) bool

	// Snapshot returns the markers currently on the surface.
	Snapshot() []entity.PlacedMarker

	// Close removes every marker and listener from the surface.
	Close() error
}

// Marker is a single marker on a MapSurface.
type Marker interface {
	// Move relocates the marker.
	Move(at entity.Coordinates)

	// SetView replaces the marker content.
	SetView(view entity.MarkerView)

	// AttachPopup sets the popup opened from the marker.
	AttachPopup(popup entity.MarkerPopup)

	// On registers fn for events of the given type and returns the function releasing it.
	On(eventType entity.MarkerEventType, fn func()) (release func())

	// Remove takes the marker off the surface and drops its listeners.
	Remove()
}

// MapSurfaceFactory creates the surface bound to a viewer's dashboard.
type MapSurfaceFactory interface {
	NewSurface(viewer entity.Viewer) (MapSurface, error)
}
