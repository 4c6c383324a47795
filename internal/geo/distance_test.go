package geo

import (
	"math"
	"testing"

	"crosspromo/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	newYork := entity.Coordinates{Latitude: 40.7128, Longitude: -74.0060}
	losAngeles := entity.Coordinates{Latitude: 34.0522, Longitude: -118.2437}

	tests := []struct {
		name  string
		a, b  entity.Coordinates
		want  float64
		delta float64
	}{
		{name: "same point", a: newYork, b: newYork, want: 0, delta: 1e-9},
		{name: "coast to coast", a: newYork, b: losAngeles, want: 2446, delta: 10},
		{name: "one degree of latitude", a: entity.Coordinates{Latitude: 0}, b: entity.Coordinates{Latitude: 1}, want: 69.2, delta: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), tt.delta)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := entity.Coordinates{Latitude: 25.033, Longitude: 121.5654}
	b := entity.Coordinates{Latitude: 22.6273, Longitude: 120.3014}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
	assert.Greater(t, Distance(a, b), 0.0)
}

func TestDistance_NaNPropagates(t *testing.T) {
	a := entity.Coordinates{Latitude: math.NaN(), Longitude: 0}
	b := entity.Coordinates{Latitude: 1, Longitude: 1}

	assert.True(t, math.IsNaN(Distance(a, b)))
}

func TestWithDistances(t *testing.T) {
	ref := entity.Coordinates{Latitude: 0, Longitude: 0}
	known := 7.5
	stores := []entity.StoreCandidate{
		{ID: "near", Coordinates: &entity.Coordinates{Latitude: 0, Longitude: 0.01}},
		{ID: "nowhere", DistanceFromViewer: &known},
	}

	out := WithDistances(stores, ref)

	require.Len(t, out, 2)
	require.NotNil(t, out[0].DistanceFromViewer)
	assert.InDelta(t, 0.69, *out[0].DistanceFromViewer, 0.01)
	assert.Equal(t, 7.5, *out[1].DistanceFromViewer)
	assert.Nil(t, stores[0].DistanceFromViewer, "input must not be mutated")
}

func TestBound(t *testing.T) {
	_, ok := Bound(nil)
	assert.False(t, ok)

	bound, ok := Bound([]entity.Coordinates{
		{Latitude: 10, Longitude: 20},
		{Latitude: -5, Longitude: 30},
	})
	require.True(t, ok)
	assert.Equal(t, 20.0, bound.Min[0])
	assert.Equal(t, -5.0, bound.Min[1])
	assert.Equal(t, 30.0, bound.Max[0])
	assert.Equal(t, 10.0, bound.Max[1])
}
