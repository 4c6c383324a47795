package backend

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"crosspromo/internal/domain/entity"
	"crosspromo/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Field spellings seen across backend versions, in lookup order.
var (
	idKeys             = []string{"_id", "id", "store_id", "storeId", "location_id", "locationId"}
	nameKeys           = []string{"store_name", "storeName", "name", "business_name", "businessName"}
	addressKeys        = []string{"address", "formatted_address", "formattedAddress", "full_address", "fullAddress"}
	firstNameKeys      = []string{"owner_first_name", "ownerFirstName", "first_name", "firstName"}
	lastNameKeys       = []string{"owner_last_name", "ownerLastName", "last_name", "lastName"}
	partnerCountKeys   = []string{"active_partnership_count", "activePartnershipCount", "partnership_count", "partnershipCount", "active_partnerships", "activePartnerships"}
	categoryKeys       = []string{"retail_category", "retailCategory", "category"}
	offerImageKeys     = []string{"current_offer_image_url", "currentOfferImageUrl", "offer_image_url", "offerImageUrl", "image_url", "imageUrl"}
	callToActionKeys   = []string{"current_offer_call_to_action", "currentOfferCallToAction", "call_to_action", "callToAction"}
	currentPartnerKeys = []string{"is_current_partner", "isCurrentPartner", "is_partner", "isPartner"}
	pendingKeys        = []string{"has_pending_request", "hasPendingRequest", "pending_request", "pendingRequest"}
	partnershipIDKeys  = []string{"partnership_id", "partnershipId"}
	distanceKeys       = []string{"distance_from_viewer", "distanceFromViewer", "distance_miles", "distanceMiles", "distance"}
	latitudeKeys       = []string{"latitude", "lat"}
	longitudeKeys      = []string{"longitude", "lng", "lon", "long"}
	envelopeKeys       = []string{"data", "partners", "stores", "locations", "candidates", "results", "items"}
)

// record is one decoded JSON object from a backend response.
type record map[string]any

// decodeRecords unwraps a list response. The list may be the body itself or sit under one
// of the envelope keys, possibly nested (for example {"data": {"stores": [...]}}).
func decodeRecords(body []byte) ([]record, error) {
	var payload any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode response body")
	}

	records, ok := unwrapRecords(payload, 0)
	if !ok {
		return nil, errors.New("response does not contain a list")
	}

	return records, nil
}

func unwrapRecords(payload any, depth int) ([]record, bool) {
	const maxDepth = 3

	switch v := payload.(type) {
	case []any:
		records := make([]record, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				records = append(records, record(m))
			}
		}

		return records, true
	case map[string]any:
		if depth >= maxDepth {
			return nil, false
		}
		for _, key := range envelopeKeys {
			inner, ok := v[key]
			if !ok {
				continue
			}
			if records, ok := unwrapRecords(inner, depth+1); ok {
				return records, true
			}
		}
	}

	return nil, false
}

// NormalizeStore converts a raw candidate record into the canonical entity. It reports false
// when the record has no id.
func NormalizeStore(raw map[string]any) (entity.StoreCandidate, bool) {
	r := record(raw)

	id := r.str(idKeys...)
	if id == "" {
		return entity.StoreCandidate{}, false
	}

	store := entity.StoreCandidate{
		ID:                       id,
		StoreName:                r.str(nameKeys...),
		Address:                  r.address(),
		OwnerFirstName:           r.str(firstNameKeys...),
		OwnerLastName:            r.str(lastNameKeys...),
		Coordinates:              r.coordinates(),
		RetailCategory:           r.str(categoryKeys...),
		CurrentOfferImageURL:     r.str(offerImageKeys...),
		CurrentOfferCallToAction: r.str(callToActionKeys...),
		IsCurrentPartner:         r.boolean(currentPartnerKeys...),
		HasPendingRequest:        r.boolean(pendingKeys...),
		PartnershipID:            r.str(partnershipIDKeys...),
	}

	if owner, ok := r.object("owner"); ok {
		if store.OwnerFirstName == "" {
			store.OwnerFirstName = owner.str(firstNameKeys...)
		}
		if store.OwnerLastName == "" {
			store.OwnerLastName = owner.str(lastNameKeys...)
		}
	}

	if offer, ok := r.object("current_offer", "currentOffer", "offer"); ok {
		if store.CurrentOfferImageURL == "" {
			store.CurrentOfferImageURL = offer.str(offerImageKeys...)
		}
		if store.CurrentOfferCallToAction == "" {
			store.CurrentOfferCallToAction = offer.str(callToActionKeys...)
		}
	}

	if count, ok := r.number(partnerCountKeys...); ok {
		store.ActivePartnershipCount = partnershipCount(count)
	}

	if distance, ok := r.number(distanceKeys...); ok && distance >= 0 {
		store.DistanceFromViewer = &distance
	}

	// a partnership id alone marks a current partner on older backends
	if store.PartnershipID != "" && !r.has(currentPartnerKeys...) {
		store.IsCurrentPartner = true
	}
	if !store.IsCurrentPartner {
		store.PartnershipID = ""
	}

	return store, true
}

// NormalizeOwnLocation converts a raw own-location record into the canonical entity. It
// reports false when the record has no id.
func NormalizeOwnLocation(raw map[string]any) (entity.OwnLocation, bool) {
	r := record(raw)

	id := r.str(idKeys...)
	if id == "" {
		return entity.OwnLocation{}, false
	}

	return entity.OwnLocation{
		ID:          id,
		Name:        r.str(nameKeys...),
		Address:     r.address(),
		Coordinates: r.coordinates(),
	}, true
}

func (r record) has(keys ...string) bool {
	for _, key := range keys {
		if v, ok := r[key]; ok && v != nil {
			return true
		}
	}

	return false
}

func (r record) str(keys ...string) string {
	for _, key := range keys {
		switch v := r[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		}
	}

	return ""
}

func (r record) number(keys ...string) (float64, bool) {
	for _, key := range keys {
		if f, ok := toFloat(r[key]); ok {
			return f, true
		}
	}

	return 0, false
}

func (r record) boolean(keys ...string) bool {
	for _, key := range keys {
		switch v := r[key].(type) {
		case bool:
			return v
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err == nil {
				return b
			}
		case json.Number:
			f, err := v.Float64()
			if err == nil {
				return f != 0
			}
		}
	}

	return false
}

func (r record) object(keys ...string) (record, bool) {
	for _, key := range keys {
		if m, ok := r[key].(map[string]any); ok {
			return record(m), true
		}
	}

	return nil, false
}

// address accepts a plain string or a structured {street, city, state, zip} object.
func (r record) address() string {
	if s := r.str(addressKeys...); s != "" {
		return s
	}

	parts, ok := r.object(addressKeys...)
	if !ok {
		return ""
	}

	var fields []string
	for _, group := range [][]string{
		{"street", "line1", "street_address", "streetAddress"},
		{"city"},
		{"state", "region"},
		{"zip", "postal_code", "postalCode", "zip_code", "zipCode"},
	} {
		if s := parts.str(group...); s != "" {
			fields = append(fields, s)
		}
	}

	return strings.Join(fields, ", ")
}

// coordinates looks for flat latitude/longitude fields, then a nested coordinates object,
// then a GeoJSON Point under location or geometry.
func (r record) coordinates() *entity.Coordinates {
	if c, ok := r.latLng(); ok {
		return c
	}

	for _, key := range []string{"coordinates", "location", "position", "geo"} {
		nested, ok := r.object(key)
		if !ok {
			continue
		}
		if c, ok := nested.latLng(); ok {
			return c
		}
	}

	for _, key := range []string{"location", "geometry", "geo"} {
		if c, ok := geoJSONPoint(r[key]); ok {
			return c
		}
	}

	return nil
}

func (r record) latLng() (*entity.Coordinates, bool) {
	lat, latOK := r.number(latitudeKeys...)
	lng, lngOK := r.number(longitudeKeys...)
	if !latOK || !lngOK {
		return nil, false
	}

	return validCoordinates(lat, lng)
}

func geoJSONPoint(v any) (*entity.Coordinates, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, false
	}

	geometry, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, false
	}

	point, ok := geometry.Geometry().(orb.Point)
	if !ok {
		return nil, false
	}

	return validCoordinates(point.Lat(), point.Lon())
}

func validCoordinates(lat, lng float64) (*entity.Coordinates, bool) {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return nil, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, false
	}

	return &entity.Coordinates{Latitude: lat, Longitude: lng}, true
}

// maxPartnershipCount bounds counts before the int conversion; any value this large is
// far past the partnership cap.
const maxPartnershipCount = math.MaxInt32

// partnershipCount rounds a reported count to the nearest whole partnership and clamps it,
// so 9.7 counts as 10 and a huge value cannot overflow.
func partnershipCount(count float64) int {
	rounded := math.Round(count)
	switch {
	case rounded <= 0:
		return 0
	case rounded >= maxPartnershipCount:
		return maxPartnershipCount
	default:
		return int(rounded)
	}
}

func toFloat(v any) (float64, bool) {
	var (
		f   float64
		err error
	)

	switch n := v.(type) {
	case json.Number:
		f, err = n.Float64()
	case float64:
		f = n
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}
