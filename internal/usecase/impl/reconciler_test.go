package impl

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"crosspromo/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func miles(v float64) *float64 {
	return &v
}

func storeIDs(stores []entity.StoreCandidate) []string {
	ids := make([]string, 0, len(stores))
	for _, s := range stores {
		ids = append(ids, s.ID)
	}

	return ids
}

func TestReconcile_CurrentAndAvailable(t *testing.T) {
	candidates := []entity.StoreCandidate{
		{ID: "A", IsCurrentPartner: true, PartnershipID: "p1", DistanceFromViewer: miles(2)},
		{ID: "B", ActivePartnershipCount: 3, DistanceFromViewer: miles(1)},
	}

	view := Reconcile(candidates, nil, nil)

	assert.Equal(t, []string{"A"}, storeIDs(view.CurrentPartners))
	assert.Equal(t, []string{"B"}, storeIDs(view.AvailablePartners))
	assert.Empty(t, view.PendingPartners)
	assert.Empty(t, view.OwnStores)
	assert.Equal(t, []string{"A", "B"}, storeIDs(view.SortedAll))
}

func TestReconcile_CancelledPartnerBecomesAvailable(t *testing.T) {
	before := Reconcile([]entity.StoreCandidate{
		{ID: "A", IsCurrentPartner: true, PartnershipID: "p1", ActivePartnershipCount: 4, DistanceFromViewer: miles(2)},
	}, nil, nil)
	require.Equal(t, []string{"A"}, storeIDs(before.CurrentPartners))

	after := Reconcile([]entity.StoreCandidate{
		{ID: "A", ActivePartnershipCount: 3, DistanceFromViewer: miles(2)},
	}, nil, nil)

	assert.Empty(t, after.CurrentPartners)
	assert.Equal(t, []string{"A"}, storeIDs(after.AvailablePartners))
}

func TestReconcile_OwnStoreAppearsOnce(t *testing.T) {
	own := []entity.OwnLocation{
		{ID: "mine", Name: "My Bakery", Address: "1 Main St"},
	}
	candidates := []entity.StoreCandidate{
		{ID: "mine", StoreName: "My Bakery (fresh)", IsCurrentPartner: true, ActivePartnershipCount: 2},
		{ID: "other", DistanceFromViewer: miles(1)},
	}

	view := Reconcile(candidates, own, nil)

	require.Len(t, view.OwnStores, 1)
	assert.Equal(t, "My Bakery (fresh)", view.OwnStores[0].StoreName, "candidate record should win over own location")
	assert.Empty(t, view.CurrentPartners)
	assert.Equal(t, []string{"mine", "other"}, storeIDs(view.SortedAll))
	assert.True(t, view.IsOwnLocation("mine"))
}

func TestReconcile_OwnStoresKeepInputOrder(t *testing.T) {
	own := []entity.OwnLocation{{ID: "z"}, {ID: "a"}, {ID: "m"}}
	candidates := []entity.StoreCandidate{
		{ID: "a", DistanceFromViewer: miles(9)},
		{ID: "m", DistanceFromViewer: miles(1)},
	}

	view := Reconcile(candidates, own, nil)

	assert.Equal(t, []string{"z", "a", "m"}, storeIDs(view.OwnStores))
}

func TestReconcile_MaxedOutStoreIsExcluded(t *testing.T) {
	candidates := []entity.StoreCandidate{
		{ID: "full", ActivePartnershipCount: entity.MaxActivePartnerships},
		{ID: "full-partner", ActivePartnershipCount: entity.MaxActivePartnerships, IsCurrentPartner: true, PartnershipID: "p9"},
		{ID: "full-pending", ActivePartnershipCount: 12, HasPendingRequest: true},
	}

	view := Reconcile(candidates, nil, nil)

	assert.NotContains(t, storeIDs(view.SortedAll), "full")
	assert.Equal(t, []string{"full"}, storeIDs(view.Ineligible))
	assert.Equal(t, []string{"full-partner"}, storeIDs(view.CurrentPartners))
	assert.Equal(t, []string{"full-pending"}, storeIDs(view.PendingPartners))
}

func TestReconcile_LocallyPendingMovesStore(t *testing.T) {
	candidates := []entity.StoreCandidate{
		{ID: "C", ActivePartnershipCount: 1, DistanceFromViewer: miles(3)},
	}

	before := Reconcile(candidates, nil, nil)
	require.Equal(t, []string{"C"}, storeIDs(before.AvailablePartners))

	after := Reconcile(candidates, nil, map[string]struct{}{"C": {}})

	assert.Empty(t, after.AvailablePartners)
	assert.Equal(t, []string{"C"}, storeIDs(after.PendingPartners))
}

func TestReconcile_MissingDistanceSortsFirst(t *testing.T) {
	candidates := []entity.StoreCandidate{
		{ID: "far", DistanceFromViewer: miles(5)},
		{ID: "unknown"},
		{ID: "near", DistanceFromViewer: miles(0.5)},
	}

	view := Reconcile(candidates, nil, nil)

	assert.Equal(t, []string{"unknown", "near", "far"}, storeIDs(view.AvailablePartners))
}

func TestReconcile_DoesNotMutateInput(t *testing.T) {
	candidates := []entity.StoreCandidate{
		{ID: "b", DistanceFromViewer: miles(2)},
		{ID: "a", DistanceFromViewer: miles(1)},
	}

	Reconcile(candidates, nil, nil)

	assert.Equal(t, []string{"b", "a"}, storeIDs(candidates))
}

func randomInput(r *rand.Rand) ([]entity.StoreCandidate, []entity.OwnLocation, map[string]struct{}) {
	const idSpace = 12

	candidates := make([]entity.StoreCandidate, 0, 10)
	for range r.IntN(10) {
		store := entity.StoreCandidate{
			ID:                     fmt.Sprintf("s%d", r.IntN(idSpace)),
			IsCurrentPartner:       r.IntN(4) == 0,
			HasPendingRequest:      r.IntN(4) == 0,
			ActivePartnershipCount: r.IntN(13),
		}
		if r.IntN(5) != 0 {
			store.DistanceFromViewer = miles(r.Float64() * 20)
		}
		candidates = append(candidates, store)
	}

	own := make([]entity.OwnLocation, 0, 3)
	for range r.IntN(3) {
		own = append(own, entity.OwnLocation{ID: fmt.Sprintf("s%d", r.IntN(idSpace))})
	}

	pending := map[string]struct{}{}
	for range r.IntN(3) {
		pending[fmt.Sprintf("s%d", r.IntN(idSpace))] = struct{}{}
	}

	return candidates, own, pending
}

func TestReconcile_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))

	for i := range 500 {
		candidates, own, pending := randomInput(r)

		view := Reconcile(candidates, own, pending)

		// Pairwise disjoint, and together with the ineligible set they cover the merged input.
		seen := map[string]entity.Category{}
		for _, entry := range view.MapEntries(true) {
			prev, dup := seen[entry.Store.ID]
			require.Falsef(t, dup, "iteration %d: %s in %s and %s", i, entry.Store.ID, prev, entry.Category)
			seen[entry.Store.ID] = entry.Category
		}

		expected := map[string]struct{}{}
		for _, c := range candidates {
			expected[c.ID] = struct{}{}
		}
		for _, o := range own {
			expected[o.ID] = struct{}{}
		}
		require.Lenf(t, seen, len(expected), "iteration %d", i)
		for id := range expected {
			require.Containsf(t, seen, id, "iteration %d", i)
		}

		// Non-own categories are sorted by distance.
		for _, group := range [][]entity.StoreCandidate{view.CurrentPartners, view.PendingPartners, view.AvailablePartners} {
			for j := 1; j < len(group); j++ {
				require.LessOrEqualf(t, group[j-1].Distance(), group[j].Distance(), "iteration %d", i)
			}
		}

		// Own locations only ever land in OwnStores.
		for _, o := range own {
			require.Equalf(t, entity.CategoryOwn, seen[o.ID], "iteration %d", i)
		}

		// Stores at the cap without a relationship are never listed.
		for _, s := range view.SortedAll {
			if seen[s.ID] == entity.CategoryAvailable {
				require.Less(t, s.ActivePartnershipCount, entity.MaxActivePartnerships)
			}
		}

		// Idempotence.
		require.Equal(t, view, Reconcile(candidates, own, pending))
	}
}
