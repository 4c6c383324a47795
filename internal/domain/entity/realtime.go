package entity

// RealtimeEventType names an event pushed by the platform notification channel.
type RealtimeEventType string

const (
	RealtimePartnerRequestReceived RealtimeEventType = "partner_request_received"
	RealtimePartnershipAccepted    RealtimeEventType = "partnership_accepted"
	RealtimePartnershipCancelled   RealtimeEventType = "partnership_cancelled"
)

// RealtimeEvent is a notification received for a viewer.
type RealtimeEvent struct {
	Type          RealtimeEventType `json:"type"`
	StoreID       string            `json:"storeId,omitempty"`
	StoreName     string            `json:"storeName,omitempty"`
	PartnershipID string            `json:"partnershipId,omitempty"`
	Message       string            `json:"message,omitempty"`
}

// RefreshesPartners reports whether the event changes partnership state.
func (e RealtimeEvent) RefreshesPartners() bool {
	switch e.Type {
	case RealtimePartnerRequestReceived, RealtimePartnershipAccepted, RealtimePartnershipCancelled:
		return true
	default:
		return false
	}
}
