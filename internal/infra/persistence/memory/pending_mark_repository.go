// Package memory keeps repository state in process memory. It is used when no database is configured.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"crosspromo/internal/domain/entity"
	"crosspromo/internal/domain/repository"
)

type markKey struct {
	viewerID string
	storeID  string
}

type pendingMarkRepository struct {
	mu    sync.RWMutex
	marks map[markKey]entity.PendingMark
}

// NewPendingMarkRepository creates an empty in-memory pending mark store.
func NewPendingMarkRepository() repository.PendingMarkRepository {
	return &pendingMarkRepository{
		marks: make(map[markKey]entity.PendingMark),
	}
}

func (r *pendingMarkRepository) SaveMark(_ context.Context, mark *entity.PendingMark) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := markKey{viewerID: mark.ViewerID, storeID: mark.StoreID}
	now := time.Now()
	if existing, ok := r.marks[key]; ok {
		mark.CreatedAt = existing.CreatedAt
	} else if mark.CreatedAt.IsZero() {
		mark.CreatedAt = now
	}
	if mark.UpdatedAt.IsZero() {
		mark.UpdatedAt = now
	}
	r.marks[key] = *mark

	return nil
}

func (r *pendingMarkRepository) FindMark(_ context.Context, viewerID, storeID string) (*entity.PendingMark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mark, ok := r.marks[markKey{viewerID: viewerID, storeID: storeID}]
	if !ok {
		return nil, repository.ErrPendingMarkNotFound
	}

	return &mark, nil
}

func (r *pendingMarkRepository) DeleteMark(_ context.Context, viewerID, storeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.marks, markKey{viewerID: viewerID, storeID: storeID})

	return nil
}

func (r *pendingMarkRepository) FindActiveMarks(_ context.Context, viewerID string, now time.Time) ([]*entity.PendingMark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	marks := make([]*entity.PendingMark, 0)
	for key, mark := range r.marks {
		if key.viewerID != viewerID {
			continue
		}
		if mark.Expired(now) {
			delete(r.marks, key)

			continue
		}
		m := mark
		marks = append(marks, &m)
	}

	slices.SortFunc(marks, func(a, b *entity.PendingMark) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return marks, nil
}

func (r *pendingMarkRepository) DeleteMarksByState(_ context.Context, viewerID string, state entity.PendingMarkState, updatedBefore time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, mark := range r.marks {
		if key.viewerID == viewerID && mark.State == state && !mark.UpdatedAt.After(updatedBefore) {
			delete(r.marks, key)
		}
	}

	return nil
}

func (r *pendingMarkRepository) DeleteExpiredMarks(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for key, mark := range r.marks {
		if mark.Expired(now) {
			delete(r.marks, key)
			removed++
		}
	}

	return removed, nil
}
