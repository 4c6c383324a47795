// Package service declares the collaborators the use cases depend on.
package service

import (
	"context"

	"crosspromo/internal/domain/entity"
)

// CandidateQuery narrows the candidate list fetch.
type CandidateQuery struct {
	Near        *entity.Coordinates
	RadiusMiles float64
}

// PartnerGateway is the platform backend as seen by the partnership workflow.
// Implementations return records already normalized to the canonical entities.
type PartnerGateway interface {
	// FetchCandidates returns the stores eligible for partnership around the viewer.
	FetchCandidates(ctx context.Context, viewer entity.Viewer, query CandidateQuery) ([]entity.StoreCandidate, error)

	// FetchOwnLocations returns the locations owned by the viewer.
	FetchOwnLocations(ctx context.Context, viewer entity.Viewer) ([]entity.OwnLocation, error)

	// SendPartnershipRequest asks targetStoreID to partner with the viewer's sourceLocationID.
	SendPartnershipRequest(ctx context.Context, viewer entity.Viewer, targetStoreID, sourceLocationID string) error

	// CancelPartnership ends an active partnership.
	CancelPartnership(ctx context.Context, viewer entity.Viewer, partnershipID string) error
}
