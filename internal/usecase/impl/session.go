package impl

import (
	"sync"
	"time"

	"crosspromo/internal/domain/entity"
	"crosspromo/internal/domain/service"
	"crosspromo/internal/errors"
)

// viewerSession is the per-viewer state of the dashboard. mu guards every field and
// serializes all writes to the map surface through the marker synchronizer.
type viewerSession struct {
	mu sync.Mutex

	id     string
	viewer entity.Viewer

	// last-known-good snapshots, kept when a refresh fails
	candidates   []entity.StoreCandidate
	ownLocations []entity.OwnLocation
	loaded       bool

	reference *entity.Coordinates
	view      *entity.PartnerView
	hoveredID string

	surface service.MapSurface
	markers *MarkerSynchronizer
	// events raised by marker listeners during the current Dispatch
	events []entity.MarkerEvent

	conn   service.RealtimeConnection
	timers map[int]func() bool
	nextID int

	lastSeen time.Time
	closed   bool
}

func newViewerSession(id string, viewer entity.Viewer, surface service.MapSurface, now time.Time) *viewerSession {
	sess := &viewerSession{
		id:       id,
		viewer:   viewer,
		surface:  surface,
		timers:   make(map[int]func() bool),
		lastSeen: now,
	}
	sess.markers = NewMarkerSynchronizer(surface, sess.recordEvent)

	return sess
}

// recordEvent runs inside surface.Dispatch, which is only called with mu held.
func (s *viewerSession) recordEvent(event entity.MarkerEvent) {
	s.events = append(s.events, event)
}

// touch records activity and picks up a refreshed access token.
func (s *viewerSession) touch(viewer entity.Viewer, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewer = viewer
	s.lastSeen = now
}

func (s *viewerSession) currentViewer() entity.Viewer {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewer
}

func (s *viewerSession) isLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loaded
}

func (s *viewerSession) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

func (s *viewerSession) currentView() *entity.PartnerView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view
}

func (s *viewerSession) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastSeen.Before(cutoff)
}

// schedule runs fn after d unless the session is closed first.
func (s *viewerSession) schedule(afterFunc func(time.Duration, func()) func() bool, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.nextID++
	id := s.nextID
	s.timers[id] = afterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, id)
		closed := s.closed
		s.mu.Unlock()

		if !closed {
			fn()
		}
	})
}

func (s *viewerSession) setConnection(conn service.RealtimeConnection) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	s.conn = conn

	return true
}

// close releases every marker, listener, timer and the realtime connection. Results that
// arrive after close are discarded by the callers checking closed.
func (s *viewerSession) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	for id, stop := range s.timers {
		stop()
		delete(s.timers, id)
	}

	s.markers.Clear()

	var errs []error
	if err := s.surface.Close(); err != nil {
		errs = append(errs, err)
	}
	if s.conn != nil {
		if err := s.conn.Close(); err != nil {
			errs = append(errs, err)
		}
		s.conn = nil
	}

	return errors.Join(errs...)
}
