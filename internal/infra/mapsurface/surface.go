// Package mapsurface keeps the server-side copy of a viewer's dashboard map. The browser
// mirrors the markers from Snapshot or FeatureCollection and forwards marker events back.
package mapsurface

import (
	"slices"
	"sync"

	"crosspromo/internal/domain/entity"
	"crosspromo/internal/domain/service"
	"crosspromo/internal/errors"
	"crosspromo/internal/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ErrSurfaceClosed is returned when markers are added to a closed surface.
var ErrSurfaceClosed = errors.New("map surface is closed")

// Surface is an in-memory map surface. It is safe for concurrent use; listeners are invoked
// without any surface lock held so they may call back into the surface.
type Surface struct {
	mu       sync.Mutex
	viewerID string
	markers  []*marker
	nextID   int
	closed   bool
}

type listener struct {
	id int
	fn func()
}

type marker struct {
	surface   *Surface
	id        int
	coords    entity.Coordinates
	view      entity.MarkerView
	popup     entity.MarkerPopup
	listeners map[entity.MarkerEventType][]listener
	removed   bool
}

// NewSurface creates an empty surface for the viewer.
func NewSurface(viewerID string) *Surface {
	return &Surface{viewerID: viewerID}
}

// AddMarker places a new marker on the surface.
func (s *Surface) AddMarker(at entity.Coordinates, view entity.MarkerView) (service.Marker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSurfaceClosed
	}

	s.nextID++
	m := &marker{
		surface:   s,
		id:        s.nextID,
		coords:    at,
		view:      view,
		listeners: make(map[entity.MarkerEventType][]listener),
	}
	s.markers = append(s.markers, m)

	return m, nil
}

// Dispatch delivers event to the listeners of the marker showing event.StoreID.
func (s *Surface) Dispatch(event entity.MarkerEvent) bool {
	s.mu.Lock()
	var target *marker
	for _, m := range s.markers {
		if m.view.StoreID == event.StoreID {
			target = m

			break
		}
	}
	if target == nil {
		s.mu.Unlock()

		return false
	}
	fns := make([]func(), 0, len(target.listeners[event.Type]))
	for _, l := range target.listeners[event.Type] {
		fns = append(fns, l.fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}

	return true
}

// Snapshot returns the placed markers ordered by marker number.
func (s *Surface) Snapshot() []entity.PlacedMarker {
	s.mu.Lock()
	defer s.mu.Unlock()

	placed := make([]entity.PlacedMarker, 0, len(s.markers))
	for _, m := range s.markers {
		placed = append(placed, entity.PlacedMarker{View: m.view, Popup: m.popup, Coordinates: m.coords})
	}

	slices.SortStableFunc(placed, func(a, b entity.PlacedMarker) int {
		return a.View.Number - b.View.Number
	})

	return placed
}

// FeatureCollection exports the markers on the surface as GeoJSON.
func (s *Surface) FeatureCollection() *geojson.FeatureCollection {
	return FeatureCollection(s.Snapshot())
}

// FeatureCollection converts placed markers to GeoJSON points with their view model and
// popup as properties. The collection carries a bounding box when it has features.
func FeatureCollection(placed []entity.PlacedMarker) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	coords := make([]entity.Coordinates, 0, len(placed))
	for _, p := range placed {
		f := geojson.NewFeature(orb.Point{p.Coordinates.Longitude, p.Coordinates.Latitude})
		f.ID = p.View.StoreID
		f.Properties["storeId"] = p.View.StoreID
		f.Properties["number"] = p.View.Number
		f.Properties["category"] = string(p.View.Category)
		f.Properties["color"] = p.View.Color
		f.Properties["label"] = p.View.Label
		f.Properties["badge"] = p.View.BadgeText
		f.Properties["highlighted"] = p.View.Highlighted
		f.Properties["disabled"] = p.View.Disabled
		f.Properties["popup"] = p.Popup
		fc.Append(f)

		coords = append(coords, p.Coordinates)
	}

	if bound, ok := geo.Bound(coords); ok {
		fc.BBox = geojson.NewBBox(bound)
	}

	return fc
}

// MarkerCount returns the number of markers on the surface.
func (s *Surface) MarkerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.markers)
}

// ListenerCount returns the number of registered listeners across all markers.
func (s *Surface) ListenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, m := range s.markers {
		for _, ls := range m.listeners {
			count += len(ls)
		}
	}

	return count
}

// Close removes every marker and listener. Further AddMarker calls fail.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.markers {
		m.removed = true
		m.listeners = nil
	}
	s.markers = nil
	s.closed = true

	return nil
}

func (m *marker) Move(at entity.Coordinates) {
	m.surface.mu.Lock()
	defer m.surface.mu.Unlock()

	m.coords = at
}

func (m *marker) SetView(view entity.MarkerView) {
	m.surface.mu.Lock()
	defer m.surface.mu.Unlock()

	m.view = view
}

func (m *marker) AttachPopup(popup entity.MarkerPopup) {
	m.surface.mu.Lock()
	defer m.surface.mu.Unlock()

	m.popup = popup
}

func (m *marker) On(eventType entity.MarkerEventType, fn func()) func() {
	s := m.surface
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.removed {
		return func() {}
	}

	s.nextID++
	id := s.nextID
	m.listeners[eventType] = append(m.listeners[eventType], listener{id: id, fn: fn})

	var once sync.Once

	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			m.listeners[eventType] = slices.DeleteFunc(m.listeners[eventType], func(l listener) bool {
				return l.id == id
			})
		})
	}
}

func (m *marker) Remove() {
	s := m.surface
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.removed {
		return
	}
	m.removed = true
	m.listeners = nil
	s.markers = slices.DeleteFunc(s.markers, func(other *marker) bool {
		return other == m
	})
}
