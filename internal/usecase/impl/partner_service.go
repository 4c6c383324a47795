package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"crosspromo/config"
	deliverycontext "crosspromo/internal/delivery/context"
	"crosspromo/internal/domain/entity"
	domainerrors "crosspromo/internal/domain/errors"
	"crosspromo/internal/domain/service"
	"crosspromo/internal/errors"
	"crosspromo/internal/geo"
	"crosspromo/internal/infra/metrics"
	"crosspromo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	sessionSweepInterval  = time.Minute
	defaultBackendTimeout = 10 * time.Second
)

// PartnerServiceParams holds dependencies for the partner service, injected by Fx
type PartnerServiceParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Gateway   service.PartnerGateway
	Tracker   *PendingTracker
	Surfaces  service.MapSurfaceFactory
	Toasts    service.ToastSink
	Publisher service.EventPublisher
	Realtime  service.RealtimeConnector `optional:"true"`
	Updates   service.PartnersNotifier  `optional:"true"`
}

type partnerService struct {
	gateway   service.PartnerGateway
	tracker   *PendingTracker
	surfaces  service.MapSurfaceFactory
	toasts    service.ToastSink
	publisher service.EventPublisher
	realtime  service.RealtimeConnector
	updates   service.PartnersNotifier
	logger    *slog.Logger

	cfg            *config.PartnersConfig
	backendTimeout time.Duration

	mu       sync.Mutex
	sessions map[string]*viewerSession

	now       func() time.Time
	afterFunc func(time.Duration, func()) func() bool
}

// NewPartnerService creates the partner service and registers the idle-session sweeper
func NewPartnerService(params PartnerServiceParams) usecase.PartnerUsecase {
	cfg := params.Config.Partners
	if cfg == nil {
		cfg = config.DefaultPartnersConfig()
	}

	backendTimeout := defaultBackendTimeout
	if params.Config.Backend != nil && params.Config.Backend.Timeout > 0 {
		backendTimeout = params.Config.Backend.Timeout
	}

	svc := &partnerService{
		gateway:        params.Gateway,
		tracker:        params.Tracker,
		surfaces:       params.Surfaces,
		toasts:         params.Toasts,
		publisher:      params.Publisher,
		realtime:       params.Realtime,
		updates:        params.Updates,
		logger:         params.Logger,
		cfg:            cfg,
		backendTimeout: backendTimeout,
		sessions:       make(map[string]*viewerSession),
		now:            time.Now,
		afterFunc: func(d time.Duration, fn func()) func() bool {
			return time.AfterFunc(d, fn).Stop
		},
	}

	if params.Lc != nil {
		sweepCtx, cancelSweep := context.WithCancel(context.Background())
		params.Lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				go svc.runSweeper(sweepCtx, sessionSweepInterval)

				return nil
			},
			OnStop: func(_ context.Context) error {
				cancelSweep()
				svc.closeAll()

				return nil
			},
		})
	}

	return svc
}

// GetPartnerView returns the viewer's partner view. The first call loads it from the backend;
// later calls reapply the current pending marks to the last fetched snapshot.
func (s *partnerService) GetPartnerView(ctx context.Context, viewer entity.Viewer) (*entity.PartnerView, error) {
	sess, err := s.session(ctx, viewer)
	if err != nil {
		return nil, err
	}

	if !sess.isLoaded() {
		return s.refresh(ctx, sess)
	}

	return s.rebuild(ctx, sess), nil
}

// RefreshPartners fetches the authoritative lists again
func (s *partnerService) RefreshPartners(ctx context.Context, viewer entity.Viewer) (*entity.PartnerView, error) {
	sess, err := s.session(ctx, viewer)
	if err != nil {
		return nil, err
	}

	return s.refresh(ctx, sess)
}

// SetReferencePoint changes the point distances are measured from and refetches the candidates around it
func (s *partnerService) SetReferencePoint(ctx context.Context, viewer entity.Viewer, point entity.Coordinates) (*entity.PartnerView, error) {
	if point.Latitude < -90 || point.Latitude > 90 || point.Longitude < -180 || point.Longitude > 180 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("reference point is out of range")
	}

	sess, err := s.session(ctx, viewer)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sess.reference = &point
	sess.mu.Unlock()

	return s.refresh(ctx, sess)
}

// RequestPartnership validates the request form, marks the target pending before the
// mutation is sent and schedules a refresh once the backend accepted it.
func (s *partnerService) RequestPartnership(ctx context.Context, viewer entity.Viewer, input *usecase.RequestPartnershipInput) (*entity.PartnerView, error) {
	logger := s.loggerFor(ctx)

	form := NewRequestForm(input.TargetStoreID)
	for _, locationID := range input.SelectedLocationIDs {
		form.SelectLocation(locationID)
	}
	form.SetConsent(input.Consent)
	if err := form.Submit(); err != nil {
		metrics.PartnershipActions.WithLabelValues("request", metrics.OutcomeInvalid).Inc()

		return nil, err
	}

	sess, err := s.session(ctx, viewer)
	if err != nil {
		return nil, err
	}
	view, err := s.ensureView(ctx, sess)
	if err != nil {
		return nil, err
	}

	target, err := checkRequestable(view, form)
	if err != nil {
		metrics.PartnershipActions.WithLabelValues("request", metrics.OutcomeInvalid).Inc()

		return nil, err
	}

	if err := s.tracker.MarkOptimistic(ctx, viewer.ID, target.ID); err != nil {
		return nil, errors.Wrap(err, "failed to mark store pending")
	}
	s.rebuild(ctx, sess)

	// The mutation outlives the caller: a client going away does not abort it.
	mutationCtx := context.WithoutCancel(ctx)
	err = s.gateway.SendPartnershipRequest(mutationCtx, viewer, target.ID, form.SelectedLocation())
	form.Resolve(err)

	if err != nil {
		logger.Error("Failed to send partnership request",
			slog.String("viewer_id", viewer.ID),
			slog.String("store_id", target.ID),
			slog.Any("error", err),
		)
		if rbErr := s.tracker.Rollback(mutationCtx, viewer.ID, target.ID); rbErr != nil {
			logger.Warn("Failed to roll back pending mark",
				slog.String("store_id", target.ID),
				slog.Any("error", rbErr),
			)
		}
		s.rebuild(mutationCtx, sess)
		s.notify(ctx, viewer.ID, entity.ToastError, "Failed to send partnership request")
		s.publish(mutationCtx, &entity.PartnershipEvent{
			Type:             entity.PartnershipEventRequestFailed,
			ViewerID:         viewer.ID,
			TargetStoreID:    target.ID,
			SourceLocationID: form.SelectedLocation(),
			Reason:           err.Error(),
		})
		metrics.PartnershipActions.WithLabelValues("request", metrics.OutcomeFailure).Inc()

		return nil, err
	}

	if err := s.tracker.Confirm(mutationCtx, viewer.ID, target.ID); err != nil {
		logger.Warn("Failed to confirm pending mark",
			slog.String("store_id", target.ID),
			slog.Any("error", err),
		)
	}
	s.notify(ctx, viewer.ID, entity.ToastSuccess, fmt.Sprintf("Partnership request sent to %s", displayName(target)))
	s.publish(mutationCtx, &entity.PartnershipEvent{
		Type:             entity.PartnershipEventRequested,
		ViewerID:         viewer.ID,
		TargetStoreID:    target.ID,
		SourceLocationID: form.SelectedLocation(),
	})
	metrics.PartnershipActions.WithLabelValues("request", metrics.OutcomeSuccess).Inc()

	sess.schedule(s.afterFunc, s.cfg.RefreshDelay, func() {
		s.refreshInBackground(sess)
	})

	return s.rebuild(mutationCtx, sess), nil
}

// CancelPartnership ends a partnership and refreshes the lists right away
func (s *partnerService) CancelPartnership(ctx context.Context, viewer entity.Viewer, partnershipID string) (*entity.PartnerView, error) {
	if partnershipID == "" {
		return nil, domainerrors.ErrPartnershipIDRequired
	}

	sess, err := s.session(ctx, viewer)
	if err != nil {
		return nil, err
	}

	name := "this store"
	if view := sess.currentView(); view != nil {
		if store, ok := view.FindByPartnershipID(partnershipID); ok {
			name = displayName(store)
		}
	}

	mutationCtx := context.WithoutCancel(ctx)
	if err := s.gateway.CancelPartnership(mutationCtx, viewer, partnershipID); err != nil {
		s.loggerFor(ctx).Error("Failed to cancel partnership",
			slog.String("viewer_id", viewer.ID),
			slog.String("partnership_id", partnershipID),
			slog.Any("error", err),
		)
		s.notify(ctx, viewer.ID, entity.ToastError, "Failed to cancel partnership")
		metrics.PartnershipActions.WithLabelValues("cancel", metrics.OutcomeFailure).Inc()

		return nil, err
	}

	s.notify(ctx, viewer.ID, entity.ToastSuccess, fmt.Sprintf("Partnership with %s cancelled", name))
	s.publish(mutationCtx, &entity.PartnershipEvent{
		Type:          entity.PartnershipEventCancelled,
		ViewerID:      viewer.ID,
		PartnershipID: partnershipID,
	})
	metrics.PartnershipActions.WithLabelValues("cancel", metrics.OutcomeSuccess).Inc()

	view, err := s.refresh(mutationCtx, sess)
	if err != nil {
		// The cancellation went through; the failed refresh was already reported.
		return sess.currentView(), nil
	}

	return view, nil
}

// GetMapMarkers returns the markers currently on the viewer's map
func (s *partnerService) GetMapMarkers(ctx context.Context, viewer entity.Viewer) (*usecase.MapMarkers, error) {
	sess, err := s.session(ctx, viewer)
	if err != nil {
		return nil, err
	}
	if _, err := s.ensureView(ctx, sess); err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return s.markersLocked(sess), nil
}

// HandleMarkerEvent dispatches a browser marker event to the map surface. Hover events
// move the highlight; a click returns the dialog the marker leads to, if any.
func (s *partnerService) HandleMarkerEvent(ctx context.Context, viewer entity.Viewer, event entity.MarkerEvent) (*usecase.MarkerEventResult, error) {
	switch event.Type {
	case entity.MarkerEventClick, entity.MarkerEventHoverEnter, entity.MarkerEventHoverExit:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown marker event type")
	}

	sess, err := s.session(ctx, viewer)
	if err != nil {
		return nil, err
	}
	if _, err := s.ensureView(ctx, sess); err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.events = sess.events[:0]
	if !sess.surface.Dispatch(event) {
		return nil, domainerrors.ErrStoreNotFound.WithDetails("no marker for store " + event.StoreID)
	}

	var dialog *entity.DialogIntent
	for _, e := range sess.events {
		switch e.Type {
		case entity.MarkerEventHoverEnter:
			sess.hoveredID = e.StoreID
		case entity.MarkerEventHoverExit:
			if sess.hoveredID == e.StoreID {
				sess.hoveredID = ""
			}
		case entity.MarkerEventClick:
			dialog = dialogFor(sess.view, e.StoreID)
		}
	}
	sess.events = nil

	if err := sess.markers.Render(sess.view.MapEntries(s.cfg.ShowIneligibleOnMap), sess.hoveredID); err != nil {
		s.loggerFor(ctx).Warn("Failed to render map markers", slog.Any("error", err))
	}

	return &usecase.MarkerEventResult{Dialog: dialog, Markers: s.markersLocked(sess)}, nil
}

// CloseSession releases the viewer's session
func (s *partnerService) CloseSession(ctx context.Context, viewerID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[viewerID]
	delete(s.sessions, viewerID)
	s.mu.Unlock()

	if !ok {
		return nil
	}
	metrics.ActiveSessions.Dec()
	s.loggerFor(ctx).Info("Viewer session closed", slog.String("viewer_id", viewerID))

	return errors.Wrap(sess.close(), "failed to close viewer session")
}

// session returns the viewer's session, opening it on first use.
func (s *partnerService) session(ctx context.Context, viewer entity.Viewer) (*viewerSession, error) {
	now := s.now()

	s.mu.Lock()
	if sess, ok := s.sessions[viewer.ID]; ok {
		s.mu.Unlock()
		sess.touch(viewer, now)

		return sess, nil
	}

	surface, err := s.surfaces.NewSurface(viewer)
	if err != nil {
		s.mu.Unlock()

		return nil, errors.Wrap(err, "failed to create map surface")
	}
	sess := newViewerSession(uuid.NewString(), viewer, surface, now)
	s.sessions[viewer.ID] = sess
	s.mu.Unlock()

	metrics.ActiveSessions.Inc()
	s.loggerFor(ctx).Info("Viewer session opened",
		slog.String("viewer_id", viewer.ID),
		slog.String("session_id", sess.id),
	)

	if s.realtime != nil {
		s.connectRealtime(sess)
	}

	return sess, nil
}

func (s *partnerService) ensureView(ctx context.Context, sess *viewerSession) (*entity.PartnerView, error) {
	if view := sess.currentView(); view != nil {
		return view, nil
	}

	return s.refresh(ctx, sess)
}

// refresh fetches candidates and own locations in parallel. A failed candidate fetch keeps
// the last-known-good snapshot; a failed own-locations fetch keeps the previous own
// locations, or none on first load.
func (s *partnerService) refresh(ctx context.Context, sess *viewerSession) (*entity.PartnerView, error) {
	logger := s.loggerFor(ctx)

	sess.mu.Lock()
	viewer := sess.viewer
	query := service.CandidateQuery{RadiusMiles: s.cfg.SearchRadiusMiles}
	if sess.reference != nil {
		ref := *sess.reference
		query.Near = &ref
	}
	sess.mu.Unlock()

	startedAt := s.now()

	var candidates []entity.StoreCandidate
	var ownLocations []entity.OwnLocation
	var ownErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		candidates, err = s.gateway.FetchCandidates(gctx, viewer, query)

		return err
	})
	g.Go(func() error {
		ownLocations, ownErr = s.gateway.FetchOwnLocations(gctx, viewer)

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Failed to load partner candidates",
			slog.String("viewer_id", viewer.ID),
			slog.Any("error", err),
		)
		s.notify(ctx, viewer.ID, entity.ToastError, "Failed to load partners")

		return nil, err
	}

	if ownErr != nil {
		logger.Warn("Failed to load own locations",
			slog.String("viewer_id", viewer.ID),
			slog.Any("error", ownErr),
		)
	}

	if err := s.tracker.Supersede(ctx, viewer.ID, startedAt); err != nil {
		logger.Warn("Failed to supersede pending marks", slog.Any("error", err))
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.candidates = candidates
	switch {
	case ownErr == nil:
		sess.ownLocations = ownLocations
	case !sess.loaded:
		sess.ownLocations = nil
	}
	sess.loaded = true
	if sess.reference == nil {
		sess.reference = defaultReference(sess.ownLocations)
	}

	return s.rebuildLocked(ctx, sess), nil
}

// rebuild reconciles the session snapshot with the current pending marks.
func (s *partnerService) rebuild(ctx context.Context, sess *viewerSession) *entity.PartnerView {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return s.rebuildLocked(ctx, sess)
}

// rebuildLocked reads the pending marks under sess.mu, so a mark written before a rebuild
// takes the lock is always part of the view it renders.
func (s *partnerService) rebuildLocked(ctx context.Context, sess *viewerSession) *entity.PartnerView {
	pending := s.pendingIDs(ctx, sess.viewer.ID)

	candidates := sess.candidates
	if sess.reference != nil {
		candidates = geo.WithDistances(candidates, *sess.reference)
	}

	view := Reconcile(candidates, sess.ownLocations, pending)
	sess.view = view

	if !sess.closed {
		if err := sess.markers.Render(view.MapEntries(s.cfg.ShowIneligibleOnMap), sess.hoveredID); err != nil {
			s.loggerFor(ctx).Warn("Failed to render map markers",
				slog.String("viewer_id", sess.viewer.ID),
				slog.Any("error", err),
			)
		}
	}

	return view
}

func (s *partnerService) markersLocked(sess *viewerSession) *usecase.MapMarkers {
	unplaced := 0
	if sess.view != nil {
		for _, e := range sess.view.MapEntries(s.cfg.ShowIneligibleOnMap) {
			if !e.Store.HasCoordinates() {
				unplaced++
			}
		}
	}

	return &usecase.MapMarkers{Markers: sess.surface.Snapshot(), Unplaced: unplaced}
}

func (s *partnerService) pendingIDs(ctx context.Context, viewerID string) map[string]struct{} {
	ids, err := s.tracker.PendingIDs(ctx, viewerID)
	if err != nil {
		s.loggerFor(ctx).Warn("Failed to load pending marks",
			slog.String("viewer_id", viewerID),
			slog.Any("error", err),
		)

		return map[string]struct{}{}
	}

	return ids
}

func (s *partnerService) connectRealtime(sess *viewerSession) {
	viewer := sess.currentViewer()

	ctx, cancel := context.WithTimeout(context.Background(), s.backendTimeout)
	defer cancel()

	conn, err := s.realtime.Connect(ctx, viewer, func(event entity.RealtimeEvent) {
		s.handleRealtimeEvent(sess, event)
	})
	if err != nil {
		s.logger.Warn("Realtime connection failed, continuing without notifications",
			slog.String("viewer_id", viewer.ID),
			slog.Any("error", err),
		)

		return
	}

	if !sess.setConnection(conn) {
		_ = conn.Close()
	}
}

func (s *partnerService) handleRealtimeEvent(sess *viewerSession, event entity.RealtimeEvent) {
	viewer := sess.currentViewer()
	ctx := context.Background()

	if message := realtimeMessage(event); message != "" {
		s.notify(ctx, viewer.ID, entity.ToastInfo, message)
	}

	if !event.RefreshesPartners() {
		return
	}

	s.refreshInBackground(sess)
}

// refreshInBackground refreshes outside of a viewer request and tells the viewer's open
// dashboards to reload the lists.
func (s *partnerService) refreshInBackground(sess *viewerSession) {
	ctx, cancel := context.WithTimeout(context.Background(), s.backendTimeout)
	defer cancel()

	if _, err := s.refresh(ctx, sess); err != nil {
		return
	}
	s.partnersUpdated(ctx, sess)
}

func (s *partnerService) partnersUpdated(ctx context.Context, sess *viewerSession) {
	if s.updates == nil || sess.isClosed() {
		return
	}
	s.updates.PartnersUpdated(context.WithoutCancel(ctx), sess.currentViewer().ID)
}

func (s *partnerService) runSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep closes sessions idle for longer than the configured TTL and prunes expired marks.
func (s *partnerService) sweep(ctx context.Context) int {
	cutoff := s.now().Add(-s.cfg.SessionIdleTTL)

	var idle []*viewerSession
	s.mu.Lock()
	for viewerID, sess := range s.sessions {
		if sess.idleSince(cutoff) {
			idle = append(idle, sess)
			delete(s.sessions, viewerID)
		}
	}
	s.mu.Unlock()

	for _, sess := range idle {
		metrics.ActiveSessions.Dec()
		if err := sess.close(); err != nil {
			s.logger.Warn("Failed to close idle session", slog.String("session_id", sess.id), slog.Any("error", err))
		}
	}

	if removed, err := s.tracker.Prune(ctx); err != nil {
		s.logger.Warn("Failed to prune pending marks", slog.Any("error", err))
	} else if removed > 0 {
		s.logger.Debug("Pruned expired pending marks", slog.Int64("removed", removed))
		s.rebuildExpired(ctx)
	}

	if len(idle) > 0 {
		s.logger.Info("Closed idle viewer sessions", slog.Int("count", len(idle)))
	}

	return len(idle)
}

// rebuildExpired re-reconciles the open sessions after marks expired and notifies the
// viewers whose pending list changed.
func (s *partnerService) rebuildExpired(ctx context.Context) {
	s.mu.Lock()
	open := make([]*viewerSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		open = append(open, sess)
	}
	s.mu.Unlock()

	for _, sess := range open {
		before := sess.currentView()
		if before == nil {
			continue
		}
		if after := s.rebuild(ctx, sess); !samePending(before, after) {
			s.partnersUpdated(ctx, sess)
		}
	}
}

func (s *partnerService) closeAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*viewerSession)
	s.mu.Unlock()

	for _, sess := range sessions {
		metrics.ActiveSessions.Dec()
		_ = sess.close()
	}
}

func (s *partnerService) notify(ctx context.Context, viewerID string, level entity.ToastLevel, message string) {
	s.toasts.Notify(context.WithoutCancel(ctx), viewerID, entity.Toast{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: s.now(),
	})
}

func (s *partnerService) publish(ctx context.Context, event *entity.PartnershipEvent) {
	event.EventID = uuid.NewString()
	event.RequestID = deliverycontext.RequestID(ctx)
	event.OccurredAt = s.now().UTC()

	if err := s.publisher.PublishPartnershipEvent(ctx, event); err != nil {
		s.loggerFor(ctx).Warn("Failed to publish partnership event",
			slog.String("type", string(event.Type)),
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}

func (s *partnerService) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

func samePending(a, b *entity.PartnerView) bool {
	if len(a.PendingPartners) != len(b.PendingPartners) {
		return false
	}
	for i := range a.PendingPartners {
		if a.PendingPartners[i].ID != b.PendingPartners[i].ID {
			return false
		}
	}

	return true
}

// checkRequestable returns the target store when a request may be sent to it from the
// selected location.
func checkRequestable(view *entity.PartnerView, form *RequestForm) (entity.StoreCandidate, error) {
	if !view.IsOwnLocation(form.SelectedLocation()) {
		return entity.StoreCandidate{}, domainerrors.ErrLocationSelectionRequired.WithDetails("the selected location is not one of your stores")
	}

	store, category, ok := view.Find(form.TargetStoreID())
	if !ok {
		return entity.StoreCandidate{}, domainerrors.ErrStoreNotFound
	}

	switch category {
	case entity.CategoryAvailable:
		return store, nil
	case entity.CategoryIneligible:
		return entity.StoreCandidate{}, domainerrors.ErrPartnerCapReached
	case entity.CategoryOwn:
		return entity.StoreCandidate{}, domainerrors.ErrPartnershipRequestNotAllowed.WithDetails("store is one of your locations")
	case entity.CategoryCurrent:
		return entity.StoreCandidate{}, domainerrors.ErrPartnershipRequestNotAllowed.WithDetails("store is already a partner")
	default:
		return entity.StoreCandidate{}, domainerrors.ErrPartnershipRequestNotAllowed.WithDetails("a request is already pending")
	}
}

// dialogFor maps a marker click to the dialog it opens. Clicks on other markers do nothing.
func dialogFor(view *entity.PartnerView, storeID string) *entity.DialogIntent {
	if view == nil {
		return nil
	}

	store, category, ok := view.Find(storeID)
	if !ok {
		return nil
	}

	switch category {
	case entity.CategoryAvailable:
		return &entity.DialogIntent{Kind: entity.DialogRequestPartnership, StoreID: store.ID, StoreName: store.StoreName}
	case entity.CategoryCurrent:
		return &entity.DialogIntent{
			Kind:          entity.DialogCancelPartnership,
			StoreID:       store.ID,
			StoreName:     store.StoreName,
			PartnershipID: store.PartnershipID,
		}
	default:
		return nil
	}
}

// defaultReference is the first own location with coordinates.
func defaultReference(locations []entity.OwnLocation) *entity.Coordinates {
	for _, loc := range locations {
		if loc.Coordinates != nil {
			ref := *loc.Coordinates

			return &ref
		}
	}

	return nil
}

func displayName(store entity.StoreCandidate) string {
	if store.StoreName != "" {
		return store.StoreName
	}

	return "the store"
}

func realtimeMessage(event entity.RealtimeEvent) string {
	if event.Message != "" {
		return event.Message
	}

	name := event.StoreName
	switch {
	case event.Type == entity.RealtimePartnerRequestReceived && name != "":
		return name + " sent you a partnership request"
	case event.Type == entity.RealtimePartnerRequestReceived:
		return "You received a partnership request"
	case event.Type == entity.RealtimePartnershipAccepted && name != "":
		return name + " accepted your partnership request"
	case event.Type == entity.RealtimePartnershipAccepted:
		return "Your partnership request was accepted"
	case event.Type == entity.RealtimePartnershipCancelled && name != "":
		return "Your partnership with " + name + " was cancelled"
	case event.Type == entity.RealtimePartnershipCancelled:
		return "A partnership was cancelled"
	default:
		return ""
	}
}
