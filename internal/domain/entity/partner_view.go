package entity

// PartnerView is the categorized, de-duplicated and distance-sorted set of stores shown to a viewer.
type PartnerView struct {
	OwnStores         []StoreCandidate `json:"ownStores"`
	CurrentPartners   []StoreCandidate `json:"currentPartners"`
	PendingPartners   []StoreCandidate `json:"pendingPartners"`
	AvailablePartners []StoreCandidate `json:"availablePartners"`
	// SortedAll is OwnStores, CurrentPartners, PendingPartners and AvailablePartners in that order.
	SortedAll []StoreCandidate `json:"sortedAll"`
	// Ineligible holds maxed-out stores. They are never part of SortedAll.
	Ineligible     []StoreCandidate    `json:"ineligible"`
	OwnLocationIDs map[string]struct{} `json:"-"`
}

// IsOwnLocation reports whether id belongs to one of the viewer's locations.
func (v *PartnerView) IsOwnLocation(id string) bool {
	_, ok := v.OwnLocationIDs[id]

	return ok
}

// Find looks a store up in every category, ineligible stores included.
func (v *PartnerView) Find(id string) (StoreCandidate, Category, bool) {
	groups := []struct {
		category Category
		stores   []StoreCandidate
	}{
		{CategoryOwn, v.OwnStores},
		{CategoryCurrent, v.CurrentPartners},
		{CategoryPending, v.PendingPartners},
		{CategoryAvailable, v.AvailablePartners},
		{CategoryIneligible, v.Ineligible},
	}

	for _, group := range groups {
		for _, store := range group.stores {
			if store.ID == id {
				return store, group.category, true
			}
		}
	}

	return StoreCandidate{}, "", false
}

// FindByPartnershipID returns the current partner linked to the given partnership.
func (v *PartnerView) FindByPartnershipID(partnershipID string) (StoreCandidate, bool) {
	for _, store := range v.CurrentPartners {
		if store.PartnershipID == partnershipID {
			return store, true
		}
	}

	return StoreCandidate{}, false
}

// MapEntries lists the stores to place on the map in display order. The position of an
// entry in the returned slice is its marker number minus one.
func (v *PartnerView) MapEntries(includeIneligible bool) []MapEntry {
	size := len(v.SortedAll)
	if includeIneligible {
		size += len(v.Ineligible)
	}

	entries := make([]MapEntry, 0, size)
	appendGroup := func(stores []StoreCandidate, category Category) {
		for _, store := range stores {
			entries = append(entries, MapEntry{Store: store, Category: category})
		}
	}

	appendGroup(v.OwnStores, CategoryOwn)
	appendGroup(v.CurrentPartners, CategoryCurrent)
	appendGroup(v.PendingPartners, CategoryPending)
	appendGroup(v.AvailablePartners, CategoryAvailable)
	if includeIneligible {
		appendGroup(v.Ineligible, CategoryIneligible)
	}

	return entries
}

// MapEntry pairs a store with the category it was reconciled into.
type MapEntry struct {
	Store    StoreCandidate
	Category Category
}
