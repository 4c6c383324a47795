package entity

// MarkerAction is what clicking a marker leads to.
type MarkerAction string

const (
	MarkerActionNone    MarkerAction = "none"
	MarkerActionRequest MarkerAction = "request"
	MarkerActionCancel  MarkerAction = "cancel"
)

// MarkerPopup is the content shown when a marker is opened.
type MarkerPopup struct {
	Title          string       `json:"title"`
	Address        string       `json:"address"`
	OwnerName      string       `json:"ownerName,omitempty"`
	RetailCategory string       `json:"retailCategory,omitempty"`
	OfferImageURL  string       `json:"offerImageUrl,omitempty"`
	CallToAction   string       `json:"callToAction,omitempty"`
	DistanceText   string       `json:"distanceText,omitempty"`
	Action         MarkerAction `json:"action"`
	ActionLabel    string       `json:"actionLabel,omitempty"`
}

// MarkerView is the typed view model of a map marker.
type MarkerView struct {
	StoreID     string   `json:"storeId"`
	Number      int      `json:"number"`
	Category    Category `json:"category"`
	Color       string   `json:"color"`
	Label       string   `json:"label"`
	BadgeText   string   `json:"badgeText"`
	Highlighted bool     `json:"highlighted"`
	Disabled    bool     `json:"disabled"`
}

// PlacedMarker is a marker as it currently exists on a map surface.
type PlacedMarker struct {
	View        MarkerView  `json:"view"`
	Popup       MarkerPopup `json:"popup"`
	Coordinates Coordinates `json:"coordinates"`
}

// MarkerEventType is a DOM-style event raised on a marker element.
type MarkerEventType string

const (
	MarkerEventClick      MarkerEventType = "click"
	MarkerEventHoverEnter MarkerEventType = "mouseenter"
	MarkerEventHoverExit  MarkerEventType = "mouseleave"
)

// MarkerEvent is an event raised by the browser map on a marker.
type MarkerEvent struct {
	Type    MarkerEventType `json:"type"`
	StoreID string          `json:"storeId"`
}

// DialogKind names the dialog a marker click opens.
type DialogKind string

const (
	DialogRequestPartnership DialogKind = "request_partnership"
	DialogCancelPartnership  DialogKind = "cancel_partnership"
)

// DialogIntent asks the client to open a dialog for a store.
type DialogIntent struct {
	Kind          DialogKind `json:"kind"`
	StoreID       string     `json:"storeId"`
	StoreName     string     `json:"storeName"`
	PartnershipID string     `json:"partnershipId,omitempty"`
}
