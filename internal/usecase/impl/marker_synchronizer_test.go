package impl

import (
	"testing"

	"crosspromo/internal/domain/entity"
	"crosspromo/internal/infra/mapsurface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(lat, lng float64) *entity.Coordinates {
	return &entity.Coordinates{Latitude: lat, Longitude: lng}
}

func entry(id string, category entity.Category, coords *entity.Coordinates) entity.MapEntry {
	return entity.MapEntry{
		Store:    entity.StoreCandidate{ID: id, StoreName: "Store " + id, Coordinates: coords},
		Category: category,
	}
}

func markerIDs(placed []entity.PlacedMarker) []string {
	ids := make([]string, 0, len(placed))
	for _, p := range placed {
		ids = append(ids, p.View.StoreID)
	}

	return ids
}

func TestMarkerSynchronizer_RenderSkipsEntriesWithoutCoordinates(t *testing.T) {
	surface := mapsurface.NewSurface("viewer")
	sync := NewMarkerSynchronizer(surface, func(entity.MarkerEvent) {})

	entries := []entity.MapEntry{
		entry("own", entity.CategoryOwn, at(1, 1)),
		entry("nowhere", entity.CategoryCurrent, nil),
		entry("avail", entity.CategoryAvailable, at(2, 2)),
	}

	require.NoError(t, sync.Render(entries, ""))

	placed := surface.Snapshot()
	assert.Equal(t, 2, sync.Count())
	assert.Equal(t, []string{"own", "avail"}, markerIDs(placed))
	assert.Equal(t, 1, placed[0].View.Number)
	assert.Equal(t, 3, placed[1].View.Number, "numbering follows the position in the full list")
	assert.Equal(t, "3", placed[1].View.Label)
}

func TestMarkerSynchronizer_RenderIsIdempotent(t *testing.T) {
	surface := mapsurface.NewSurface("viewer")
	sync := NewMarkerSynchronizer(surface, func(entity.MarkerEvent) {})
	entries := []entity.MapEntry{
		entry("A", entity.CategoryCurrent, at(1, 1)),
		entry("B", entity.CategoryAvailable, at(2, 2)),
	}

	require.NoError(t, sync.Render(entries, "B"))
	first := surface.Snapshot()
	listeners := surface.ListenerCount()

	require.NoError(t, sync.Render(entries, "B"))

	assert.Equal(t, first, surface.Snapshot())
	assert.Equal(t, 2, surface.MarkerCount())
	assert.Equal(t, listeners, surface.ListenerCount())
}

func TestMarkerSynchronizer_HoverHighlightsOnlyHoveredMarker(t *testing.T) {
	surface := mapsurface.NewSurface("viewer")
	sync := NewMarkerSynchronizer(surface, func(entity.MarkerEvent) {})
	entries := []entity.MapEntry{
		entry("A", entity.CategoryCurrent, at(1, 1)),
		entry("B", entity.CategoryAvailable, at(2, 2)),
	}

	require.NoError(t, sync.Render(entries, "B"))
	placed := surface.Snapshot()
	assert.False(t, placed[0].View.Highlighted)
	assert.True(t, placed[1].View.Highlighted)

	require.NoError(t, sync.Render(entries, ""))
	for _, p := range surface.Snapshot() {
		assert.False(t, p.View.Highlighted)
	}
}

func TestMarkerSynchronizer_RemovesMarkersThatDisappear(t *testing.T) {
	surface := mapsurface.NewSurface("viewer")
	sync := NewMarkerSynchronizer(surface, func(entity.MarkerEvent) {})

	require.NoError(t, sync.Render([]entity.MapEntry{
		entry("A", entity.CategoryCurrent, at(1, 1)),
		entry("B", entity.CategoryAvailable, at(2, 2)),
	}, ""))
	require.Equal(t, 6, surface.ListenerCount())

	require.NoError(t, sync.Render([]entity.MapEntry{
		entry("B", entity.CategoryAvailable, at(2, 2)),
	}, ""))

	assert.Equal(t, []string{"B"}, markerIDs(surface.Snapshot()))
	assert.Equal(t, 3, surface.ListenerCount())
	assert.Equal(t, 1, surface.Snapshot()[0].View.Number)
}

func TestMarkerSynchronizer_KeepsMarkerIdentityAcrossCategoryChange(t *testing.T) {
	surface := mapsurface.NewSurface("viewer")
	var events []entity.MarkerEvent
	sync := NewMarkerSynchronizer(surface, func(e entity.MarkerEvent) { events = append(events, e) })

	require.NoError(t, sync.Render([]entity.MapEntry{entry("C", entity.CategoryAvailable, at(1, 1))}, ""))
	require.NoError(t, sync.Render([]entity.MapEntry{entry("C", entity.CategoryPending, at(1.5, 1))}, ""))

	placed := surface.Snapshot()
	require.Len(t, placed, 1)
	assert.Equal(t, entity.CategoryPending, placed[0].View.Category)
	assert.Equal(t, entity.CategoryPending.Color(), placed[0].View.Color)
	assert.Equal(t, "Request pending", placed[0].Popup.ActionLabel)
	assert.Equal(t, entity.Coordinates{Latitude: 1.5, Longitude: 1}, placed[0].Coordinates)
	assert.Equal(t, 3, surface.ListenerCount())

	surface.Dispatch(entity.MarkerEvent{Type: entity.MarkerEventClick, StoreID: "C"})
	assert.Equal(t, []entity.MarkerEvent{{Type: entity.MarkerEventClick, StoreID: "C"}}, events)
}

func TestMarkerSynchronizer_PopupActions(t *testing.T) {
	distance := 0.44
	tests := []struct {
		category entity.Category
		action   entity.MarkerAction
		disabled bool
	}{
		{category: entity.CategoryOwn, action: entity.MarkerActionNone},
		{category: entity.CategoryCurrent, action: entity.MarkerActionCancel},
		{category: entity.CategoryPending, action: entity.MarkerActionNone},
		{category: entity.CategoryAvailable, action: entity.MarkerActionRequest},
		{category: entity.CategoryIneligible, action: entity.MarkerActionNone, disabled: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			e := entry("S", tt.category, at(1, 1))
			e.Store.DistanceFromViewer = &distance

			view := buildMarkerView(e, 4, false)
			popup := buildMarkerPopup(e)

			assert.Equal(t, tt.action, popup.Action)
			assert.Equal(t, tt.disabled, view.Disabled)
			assert.Equal(t, "0.4 mi", popup.DistanceText)
			assert.Equal(t, "Store S", popup.Title)
		})
	}
}

func TestMarkerSynchronizer_ClearReleasesEverything(t *testing.T) {
	surface := mapsurface.NewSurface("viewer")
	sync := NewMarkerSynchronizer(surface, func(entity.MarkerEvent) {})

	require.NoError(t, sync.Render([]entity.MapEntry{
		entry("A", entity.CategoryOwn, at(1, 1)),
		entry("B", entity.CategoryIneligible, at(2, 2)),
	}, "A"))

	sync.Clear()

	assert.Equal(t, 0, sync.Count())
	assert.Equal(t, 0, surface.MarkerCount())
	assert.Equal(t, 0, surface.ListenerCount())
}

func TestMarkerSynchronizer_ReportsSurfaceErrors(t *testing.T) {
	surface := mapsurface.NewSurface("viewer")
	require.NoError(t, surface.Close())
	sync := NewMarkerSynchronizer(surface, func(entity.MarkerEvent) {})

	err := sync.Render([]entity.MapEntry{entry("A", entity.CategoryOwn, at(1, 1))}, "")

	require.ErrorIs(t, err, mapsurface.ErrSurfaceClosed)
	assert.Equal(t, 0, sync.Count())
}
