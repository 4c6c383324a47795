package impl

import (
	"context"
	"time"

	"crosspromo/config"
	"crosspromo/internal/domain/entity"
	"crosspromo/internal/domain/repository"
	"crosspromo/internal/errors"
)

// PendingTracker owns the stores each viewer marked pending ahead of the backend.
//
// A mark starts optimistic when a request is submitted and is either rolled back when the
// mutation fails or confirmed when it succeeds. Confirmed marks are dropped by the next
// authoritative refresh; optimistic marks survive it so an in-flight request keeps its
// pending state. Both kinds expire on their own after their TTL.
type PendingTracker struct {
	repo          repository.PendingMarkRepository
	optimisticTTL time.Duration
	confirmedTTL  time.Duration
	now           func() time.Time
}

// NewPendingTracker creates a tracker backed by repo.
func NewPendingTracker(repo repository.PendingMarkRepository, cfg *config.Config) *PendingTracker {
	partners := cfg.Partners
	if partners == nil {
		partners = config.DefaultPartnersConfig()
	}

	return &PendingTracker{
		repo:          repo,
		optimisticTTL: partners.OptimisticTTL,
		confirmedTTL:  partners.ConfirmedTTL,
		now:           time.Now,
	}
}

// MarkOptimistic records storeID as pending before the request mutation resolves.
func (t *PendingTracker) MarkOptimistic(ctx context.Context, viewerID, storeID string) error {
	return t.save(ctx, viewerID, storeID, entity.PendingMarkOptimistic, t.optimisticTTL)
}

// Confirm turns the optimistic mark into a confirmed one after the backend accepted the request.
func (t *PendingTracker) Confirm(ctx context.Context, viewerID, storeID string) error {
	return t.save(ctx, viewerID, storeID, entity.PendingMarkConfirmed, t.confirmedTTL)
}

// Rollback removes the mark after the request mutation failed.
func (t *PendingTracker) Rollback(ctx context.Context, viewerID, storeID string) error {
	if err := t.repo.DeleteMark(ctx, viewerID, storeID); err != nil {
		return errors.Wrap(err, "failed to roll back pending mark")
	}

	return nil
}

// PendingIDs returns the set of store ids currently marked pending for the viewer.
func (t *PendingTracker) PendingIDs(ctx context.Context, viewerID string) (map[string]struct{}, error) {
	marks, err := t.repo.FindActiveMarks(ctx, viewerID, t.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pending marks")
	}

	ids := make(map[string]struct{}, len(marks))
	for _, mark := range marks {
		ids[mark.StoreID] = struct{}{}
	}

	return ids, nil
}

// Supersede drops the confirmed marks once an authoritative list was fetched. Marks
// confirmed after fetchStartedAt may not be reflected in that list yet and are kept.
func (t *PendingTracker) Supersede(ctx context.Context, viewerID string, fetchStartedAt time.Time) error {
	if err := t.repo.DeleteMarksByState(ctx, viewerID, entity.PendingMarkConfirmed, fetchStartedAt); err != nil {
		return errors.Wrap(err, "failed to supersede confirmed marks")
	}

	return nil
}

// Prune deletes expired marks of every viewer.
func (t *PendingTracker) Prune(ctx context.Context) (int64, error) {
	removed, err := t.repo.DeleteExpiredMarks(ctx, t.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune pending marks")
	}

	return removed, nil
}

func (t *PendingTracker) save(ctx context.Context, viewerID, storeID string, state entity.PendingMarkState, ttl time.Duration) error {
	now := t.now()
	mark := &entity.PendingMark{
		ViewerID:  viewerID,
		StoreID:   storeID,
		State:     state,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := t.repo.SaveMark(ctx, mark); err != nil {
		return errors.Wrapf(err, "failed to save %s pending mark", state)
	}

	return nil
}
