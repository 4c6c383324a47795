package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"crosspromo/config"
	"crosspromo/internal/domain/entity"
	domainerrors "crosspromo/internal/domain/errors"
	mockUsecase "crosspromo/internal/mocks/usecase"
	"crosspromo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMapTestServer(t *testing.T) (*mockUsecase.MockPartnerUsecase, *echo.Echo) {
	t.Helper()

	uc := mockUsecase.NewMockPartnerUsecase(t)
	h := NewMapHandler(MapHandlerParams{
		Config: &config.Config{Map: &config.MapConfig{
			AccessToken: "pk.test",
			StyleURL:    "mapbox://styles/test",
			CenterLat:   39.95,
			CenterLng:   -75.16,
			Zoom:        11,
		}},
		PartnerUC: uc,
	})

	e := newTestEcho()
	e.GET("/v1/map/config", h.GetMapConfig)
	e.GET("/v1/map/markers", h.GetMarkers, asViewer)
	e.POST("/v1/map/events", h.HandleMarkerEvent, asViewer)

	return uc, e
}

func testMarkers() *usecase.MapMarkers {
	return &usecase.MapMarkers{
		Markers: []entity.PlacedMarker{
			{
				View:        entity.MarkerView{StoreID: "store-a", Number: 1, Category: entity.CategoryAvailable},
				Popup:       entity.MarkerPopup{Title: "Bakery A", Action: entity.MarkerActionRequest},
				Coordinates: entity.Coordinates{Latitude: 40, Longitude: -75},
			},
		},
		Unplaced: 2,
	}
}

func TestMapHandler_GetMapConfig(t *testing.T) {
	_, e := newMapTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/v1/map/config", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cfg MapConfigResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &cfg))
	assert.Equal(t, MapConfigResponse{
		AccessToken: "pk.test",
		StyleURL:    "mapbox://styles/test",
		Center:      entity.Coordinates{Latitude: 39.95, Longitude: -75.16},
		Zoom:        11,
	}, cfg)
}

func TestMapHandler_GetMarkers(t *testing.T) {
	uc, e := newMapTestServer(t)
	uc.EXPECT().GetMapMarkers(mock.Anything, testViewer).Return(testMarkers(), nil).Once()

	rec := doRequest(t, e, http.MethodGet, "/v1/map/markers", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		FeatureCollection json.RawMessage `json:"featureCollection"`
		Unplaced          int             `json:"unplaced"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Equal(t, 2, body.Unplaced)

	fc, err := geojson.UnmarshalFeatureCollection(body.FeatureCollection)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "store-a", fc.Features[0].Properties["storeId"])
	assert.InDelta(t, -75.0, fc.Features[0].Point().Lon(), 1e-9)
}

func TestMapHandler_HandleMarkerEvent(t *testing.T) {
	t.Run("click opens dialog", func(t *testing.T) {
		uc, e := newMapTestServer(t)
		uc.EXPECT().HandleMarkerEvent(mock.Anything, testViewer, entity.MarkerEvent{Type: entity.MarkerEventClick, StoreID: "store-a"}).
			Return(&usecase.MarkerEventResult{
				Dialog:  &entity.DialogIntent{Kind: entity.DialogRequestPartnership, StoreID: "store-a"},
				Markers: testMarkers(),
			}, nil).Once()

		rec := doRequest(t, e, http.MethodPost, "/v1/map/events", `{"type":"click","storeId":"store-a"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Dialog *entity.DialogIntent `json:"dialog"`
		}
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
		require.NotNil(t, body.Dialog)
		assert.Equal(t, entity.DialogRequestPartnership, body.Dialog.Kind)
	})

	t.Run("unknown event type", func(t *testing.T) {
		_, e := newMapTestServer(t)

		rec := doRequest(t, e, http.MethodPost, "/v1/map/events", `{"type":"dblclick","storeId":"store-a"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown store", func(t *testing.T) {
		uc, e := newMapTestServer(t)
		uc.EXPECT().HandleMarkerEvent(mock.Anything, testViewer, mock.Anything).
			Return(nil, domainerrors.ErrStoreNotFound.WithDetails("store-x")).Once()

		rec := doRequest(t, e, http.MethodPost, "/v1/map/events", `{"type":"mouseenter","storeId":"store-x"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "store-x", decodeEnvelope(t, rec).Error.Details)
	})
}
