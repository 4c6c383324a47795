package impl

import (
	"strconv"

	"crosspromo/internal/domain/entity"
	"crosspromo/internal/domain/service"
	"crosspromo/internal/errors"
	"crosspromo/internal/util"
)

var markerEventTypes = []entity.MarkerEventType{
	entity.MarkerEventClick,
	entity.MarkerEventHoverEnter,
	entity.MarkerEventHoverExit,
}

// MarkerSynchronizer is the only writer of a map surface. It keeps one marker per store id
// and brings the surface in line with the map entries on every Render.
type MarkerSynchronizer struct {
	surface service.MapSurface
	onEvent func(entity.MarkerEvent)
	markers map[string]*syncedMarker
}

type syncedMarker struct {
	marker   service.Marker
	coords   entity.Coordinates
	view     entity.MarkerView
	popup    entity.MarkerPopup
	releases []func()
}

// NewMarkerSynchronizer binds a synchronizer to surface. onEvent receives every event raised
// on a marker it created.
func NewMarkerSynchronizer(surface service.MapSurface, onEvent func(entity.MarkerEvent)) *MarkerSynchronizer {
	return &MarkerSynchronizer{
		surface: surface,
		onEvent: onEvent,
		markers: make(map[string]*syncedMarker),
	}
}

// Render places a marker for every entry that has coordinates, numbered by its position in
// entries, and removes markers whose store is no longer listed. Calling it again with the
// same arguments leaves the surface untouched.
func (s *MarkerSynchronizer) Render(entries []entity.MapEntry, hoveredID string) error {
	wanted := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.Store.HasCoordinates() {
			wanted[entry.Store.ID] = struct{}{}
		}
	}

	for id, synced := range s.markers {
		if _, ok := wanted[id]; !ok {
			s.release(synced)
			delete(s.markers, id)
		}
	}

	var errs []error
	placed := make(map[string]struct{}, len(wanted))
	for i, entry := range entries {
		store := entry.Store
		if !store.HasCoordinates() {
			continue
		}
		if _, dup := placed[store.ID]; dup {
			continue
		}
		placed[store.ID] = struct{}{}

		view := buildMarkerView(entry, i+1, store.ID == hoveredID)
		popup := buildMarkerPopup(entry)
		coords := *store.Coordinates

		if synced, ok := s.markers[store.ID]; ok {
			s.update(synced, coords, view, popup)

			continue
		}

		if err := s.create(store.ID, coords, view, popup); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Count returns the number of markers currently owned by the synchronizer.
func (s *MarkerSynchronizer) Count() int {
	return len(s.markers)
}

// Clear removes every marker and releases its listeners.
func (s *MarkerSynchronizer) Clear() {
	for id, synced := range s.markers {
		s.release(synced)
		delete(s.markers, id)
	}
}

func (s *MarkerSynchronizer) create(storeID string, coords entity.Coordinates, view entity.MarkerView, popup entity.MarkerPopup) error {
	marker, err := s.surface.AddMarker(coords, view)
	if err != nil {
		return errors.Wrapf(err, "failed to add marker for store %s", storeID)
	}
	marker.AttachPopup(popup)

	synced := &syncedMarker{marker: marker, coords: coords, view: view, popup: popup}
	for _, eventType := range markerEventTypes {
		event := entity.MarkerEvent{Type: eventType, StoreID: storeID}
		synced.releases = append(synced.releases, marker.On(eventType, func() {
			s.onEvent(event)
		}))
	}
	s.markers[storeID] = synced

	return nil
}

func (s *MarkerSynchronizer) update(synced *syncedMarker, coords entity.Coordinates, view entity.MarkerView, popup entity.MarkerPopup) {
	if synced.coords != coords {
		synced.marker.Move(coords)
		synced.coords = coords
	}
	if synced.view != view {
		synced.marker.SetView(view)
		synced.view = view
	}
	if synced.popup != popup {
		synced.marker.AttachPopup(popup)
		synced.popup = popup
	}
}

func (s *MarkerSynchronizer) release(synced *syncedMarker) {
	for _, release := range synced.releases {
		release()
	}
	synced.releases = nil
	synced.marker.Remove()
}

func buildMarkerView(entry entity.MapEntry, number int, hovered bool) entity.MarkerView {
	return entity.MarkerView{
		StoreID:     entry.Store.ID,
		Number:      number,
		Category:    entry.Category,
		Color:       entry.Category.Color(),
		Label:       strconv.Itoa(number),
		BadgeText:   badgeText(entry.Category),
		Highlighted: hovered,
		Disabled:    entry.Category == entity.CategoryIneligible,
	}
}

func badgeText(category entity.Category) string {
	switch category {
	case entity.CategoryOwn:
		return "Your store"
	case entity.CategoryCurrent:
		return "Partner"
	case entity.CategoryPending:
		return "Pending"
	case entity.CategoryAvailable:
		return "Available"
	default:
		return "Full"
	}
}

func buildMarkerPopup(entry entity.MapEntry) entity.MarkerPopup {
	store := entry.Store
	popup := entity.MarkerPopup{
		Title:          store.StoreName,
		Address:        store.Address,
		OwnerName:      store.OwnerName(),
		RetailCategory: store.RetailCategory,
		OfferImageURL:  store.CurrentOfferImageURL,
		CallToAction:   store.CurrentOfferCallToAction,
		Action:         entity.MarkerActionNone,
	}
	if store.DistanceFromViewer != nil {
		popup.DistanceText = util.FormatMiles(*store.DistanceFromViewer)
	}

	switch entry.Category {
	case entity.CategoryAvailable:
		popup.Action = entity.MarkerActionRequest
		popup.ActionLabel = "Request partnership"
	case entity.CategoryCurrent:
		popup.Action = entity.MarkerActionCancel
		popup.ActionLabel = "Cancel partnership"
	case entity.CategoryPending:
		popup.ActionLabel = "Request pending"
	case entity.CategoryIneligible:
		popup.ActionLabel = "Partner limit reached"
	}

	return popup
}
