package impl

import (
	"slices"

	"crosspromo/internal/domain/entity"
)

// Reconcile merges the candidate stores with the viewer's own locations and partitions the
// result into own stores, current partners, pending partners and available partners.
// It never mutates its inputs and keeps no state besides locallyPending.
func Reconcile(candidates []entity.StoreCandidate, ownLocations []entity.OwnLocation, locallyPending map[string]struct{}) *entity.PartnerView {
	ownIDs := make(map[string]struct{}, len(ownLocations))
	for _, loc := range ownLocations {
		ownIDs[loc.ID] = struct{}{}
	}

	merged := mergeStores(candidates, ownLocations)

	view := &entity.PartnerView{
		OwnStores:         []entity.StoreCandidate{},
		CurrentPartners:   []entity.StoreCandidate{},
		PendingPartners:   []entity.StoreCandidate{},
		AvailablePartners: []entity.StoreCandidate{},
		Ineligible:        []entity.StoreCandidate{},
		OwnLocationIDs:    ownIDs,
	}

	for _, store := range merged {
		switch classify(store, ownIDs, locallyPending) {
		case entity.CategoryOwn:
			view.OwnStores = append(view.OwnStores, store)
		case entity.CategoryCurrent:
			view.CurrentPartners = append(view.CurrentPartners, store)
		case entity.CategoryPending:
			view.PendingPartners = append(view.PendingPartners, store)
		case entity.CategoryAvailable:
			view.AvailablePartners = append(view.AvailablePartners, store)
		default:
			view.Ineligible = append(view.Ineligible, store)
		}
	}

	sortByDistance(view.CurrentPartners)
	sortByDistance(view.PendingPartners)
	sortByDistance(view.AvailablePartners)
	sortByDistance(view.Ineligible)

	view.SortedAll = make([]entity.StoreCandidate, 0,
		len(view.OwnStores)+len(view.CurrentPartners)+len(view.PendingPartners)+len(view.AvailablePartners))
	view.SortedAll = append(view.SortedAll, view.OwnStores...)
	view.SortedAll = append(view.SortedAll, view.CurrentPartners...)
	view.SortedAll = append(view.SortedAll, view.PendingPartners...)
	view.SortedAll = append(view.SortedAll, view.AvailablePartners...)

	return view
}

// classify returns the single category a store belongs to.
func classify(store entity.StoreCandidate, ownIDs, locallyPending map[string]struct{}) entity.Category {
	if _, ok := ownIDs[store.ID]; ok {
		return entity.CategoryOwn
	}
	if store.IsCurrentPartner {
		return entity.CategoryCurrent
	}
	if _, ok := locallyPending[store.ID]; ok || store.HasPendingRequest {
		return entity.CategoryPending
	}
	if !store.IsMaxedOut() {
		return entity.CategoryAvailable
	}

	return entity.CategoryIneligible
}

// mergeStores puts own locations first, in their input order, followed by the candidates.
// Duplicate ids collapse to one entry; a candidate record replaces an own location in place
// and the first candidate wins among duplicate candidates.
func mergeStores(candidates []entity.StoreCandidate, ownLocations []entity.OwnLocation) []entity.StoreCandidate {
	merged := make([]entity.StoreCandidate, 0, len(ownLocations)+len(candidates))
	index := make(map[string]int, cap(merged))
	fromCandidate := make(map[string]bool, cap(merged))

	for _, loc := range ownLocations {
		if _, seen := index[loc.ID]; seen {
			continue
		}
		index[loc.ID] = len(merged)
		merged = append(merged, loc.AsCandidate())
	}

	for _, store := range candidates {
		pos, seen := index[store.ID]
		switch {
		case !seen:
			index[store.ID] = len(merged)
			fromCandidate[store.ID] = true
			merged = append(merged, store)
		case !fromCandidate[store.ID]:
			merged[pos] = store
			fromCandidate[store.ID] = true
		}
	}

	return merged
}

// sortByDistance orders stores by ascending distance; an unknown distance counts as zero.
func sortByDistance(stores []entity.StoreCandidate) {
	slices.SortStableFunc(stores, func(a, b entity.StoreCandidate) int {
		da, db := a.Distance(), b.Distance()
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})
}
