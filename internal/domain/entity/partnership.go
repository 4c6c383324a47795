package entity

import "time"

// RequestStatus is the status of a partnership request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// PartnerRequest is a request from one store to another to become partners.
// Approval promotes it to a Partnership.
type PartnerRequest struct {
	SenderLocationID string        `json:"senderLocationId"`
	RecipientStoreID string        `json:"recipientStoreId"`
	Status           RequestStatus `json:"status"`
}

// Partnership links two stores after a request was approved. A cancelled partnership is
// never reactivated; a new request has to be issued.
type Partnership struct {
	ID          string     `json:"id"`
	StoreIDs    [2]string  `json:"storeIds"`
	CreatedAt   time.Time  `json:"createdAt"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

// IsActive reports whether the partnership has not been cancelled.
func (p Partnership) IsActive() bool {
	return p.CancelledAt == nil
}

// PartnershipEventType names a partnership lifecycle event.
type PartnershipEventType string

const (
	PartnershipEventRequested     PartnershipEventType = "partnership.requested"
	PartnershipEventRequestFailed PartnershipEventType = "partnership.request_failed"
	PartnershipEventCancelled     PartnershipEventType = "partnership.cancelled"
)

// PartnershipEvent is published after a workflow mutation completes.
type PartnershipEvent struct {
	EventID          string               `json:"event_id"`
	RequestID        string               `json:"request_id,omitempty"`
	Type             PartnershipEventType `json:"type"`
	ViewerID         string               `json:"viewer_id"`
	TargetStoreID    string               `json:"target_store_id,omitempty"`
	SourceLocationID string               `json:"source_location_id,omitempty"`
	PartnershipID    string               `json:"partnership_id,omitempty"`
	Reason           string               `json:"reason,omitempty"`
	OccurredAt       time.Time            `json:"occurred_at"`
}
