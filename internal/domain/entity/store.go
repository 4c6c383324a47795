// Package entity contains the core business objects of the project.
package entity

import "github.com/paulmach/orb"

// MaxActivePartnerships is the number of active partnerships after which a store
// stops accepting new partnership requests.
const MaxActivePartnerships = 10

// Coordinates is a WGS84 position in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point converts the coordinates into an orb point (longitude first).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// StoreCandidate is a nearby retail location eligible for partnership.
type StoreCandidate struct {
	ID                       string       `json:"id"`
	StoreName                string       `json:"storeName"`
	Address                  string       `json:"address"`
	OwnerFirstName           string       `json:"ownerFirstName"`
	OwnerLastName            string       `json:"ownerLastName"`
	// Coordinates is nil when the backend sent no usable position.
	Coordinates              *Coordinates `json:"coordinates,omitempty"`
	ActivePartnershipCount   int          `json:"activePartnershipCount"`
	RetailCategory           string       `json:"retailCategory,omitempty"`
	CurrentOfferImageURL     string       `json:"currentOfferImageUrl,omitempty"`
	CurrentOfferCallToAction string       `json:"currentOfferCallToAction,omitempty"`
	IsCurrentPartner         bool         `json:"isCurrentPartner"`
	HasPendingRequest        bool         `json:"hasPendingRequest"`
	PartnershipID            string       `json:"partnershipId,omitempty"`      // only set for current partners.
	DistanceFromViewer       *float64     `json:"distanceFromViewer,omitempty"` // miles.
}

// HasCoordinates reports whether the store can be placed on a map.
func (s StoreCandidate) HasCoordinates() bool {
	return s.Coordinates != nil
}

// IsMaxedOut reports whether the store reached the partnership cap.
func (s StoreCandidate) IsMaxedOut() bool {
	return s.ActivePartnershipCount >= MaxActivePartnerships
}

// Distance returns the distance from the viewer, treating an unknown distance as zero.
func (s StoreCandidate) Distance() float64 {
	if s.DistanceFromViewer == nil {
		return 0
	}

	return *s.DistanceFromViewer
}

// OwnerName joins the owner's first and last name.
func (s StoreCandidate) OwnerName() string {
	switch {
	case s.OwnerFirstName == "":
		return s.OwnerLastName
	case s.OwnerLastName == "":
		return s.OwnerFirstName
	default:
		return s.OwnerFirstName + " " + s.OwnerLastName
	}
}

// OwnLocation is a location owned by the signed-in viewer.
type OwnLocation struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// AsCandidate converts the location to the candidate shape with zeroed partnership fields.
func (l OwnLocation) AsCandidate() StoreCandidate {
	return StoreCandidate{
		ID:          l.ID,
		StoreName:   l.Name,
		Address:     l.Address,
		Coordinates: l.Coordinates,
	}
}
