// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"crosspromo/internal/domain/entity"
	"crosspromo/internal/errors"
)

// ErrPendingMarkNotFound is returned when no mark exists for the viewer and store.
var ErrPendingMarkNotFound = errors.New("pending mark not found")

// PendingMarkRepository stores the stores a viewer marked pending ahead of the backend.
type PendingMarkRepository interface {
	// SaveMark creates or replaces the mark for (ViewerID, StoreID).
	SaveMark(ctx context.Context, mark *entity.PendingMark) error

	// FindMark retrieves a single mark. Returns ErrPendingMarkNotFound when absent.
	FindMark(ctx context.Context, viewerID, storeID string) (*entity.PendingMark, error)

	// DeleteMark removes the mark for (viewerID, storeID). Deleting a missing mark is not an error.
	DeleteMark(ctx context.Context, viewerID, storeID string) error

	// FindActiveMarks returns the viewer's marks that have not expired at now.
	FindActiveMarks(ctx context.Context, viewerID string, now time.Time) ([]*entity.PendingMark, error)

	// DeleteMarksByState removes the viewer's marks in the given state that were last
	// updated at or before updatedBefore.
	DeleteMarksByState(ctx context.Context, viewerID string, state entity.PendingMarkState, updatedBefore time.Time) error

	// DeleteExpiredMarks removes every mark that expired at or before now and returns the count.
	DeleteExpiredMarks(ctx context.Context, now time.Time) (int64, error)
}
