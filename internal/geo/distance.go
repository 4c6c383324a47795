// Package geo contains the distance helpers used to order stores around the viewer.
package geo

import (
	"crosspromo/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// MetersPerMile is the length of an international mile.
const MetersPerMile = 1609.344

// Distance returns the great-circle distance between a and b in miles.
// Invalid input is not rejected: NaN coordinates yield NaN.
func Distance(a, b entity.Coordinates) float64 {
	return orbgeo.DistanceHaversine(a.Point(), b.Point()) / MetersPerMile
}

// WithDistances returns a copy of stores with DistanceFromViewer computed from ref.
// Stores without coordinates keep whatever distance they already carried.
func WithDistances(stores []entity.StoreCandidate, ref entity.Coordinates) []entity.StoreCandidate {
	out := make([]entity.StoreCandidate, len(stores))
	for i, store := range stores {
		out[i] = store
		if store.Coordinates == nil {
			continue
		}

		d := Distance(ref, *store.Coordinates)
		out[i].DistanceFromViewer = &d
	}

	return out
}

// Bound returns the bounding box of the given coordinates, and false when there are none.
func Bound(coords []entity.Coordinates) (orb.Bound, bool) {
	if len(coords) == 0 {
		return orb.Bound{}, false
	}

	bound := coords[0].Point().Bound()
	for _, c := range coords[1:] {
		bound = bound.Extend(c.Point())
	}

	return bound, true
}
