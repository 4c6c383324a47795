package entity

import "time"

// PendingMarkState tags how a store came to be marked pending locally.
type PendingMarkState string

const (
	// PendingMarkOptimistic is set before the request mutation resolves.
	PendingMarkOptimistic PendingMarkState = "optimistic"
	// PendingMarkConfirmed is set once the backend accepted the request.
	PendingMarkConfirmed PendingMarkState = "confirmed"
)

// PendingMark records a store the viewer requested locally, ahead of the next
// authoritative refresh.
type PendingMark struct {
	ViewerID  string
	StoreID   string
	State     PendingMarkState
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the mark is no longer valid at now.
func (m PendingMark) Expired(now time.Time) bool {
	return !m.ExpiresAt.IsZero() && !now.Before(m.ExpiresAt)
}
