package handler

import (
	"net/http"

	"crosspromo/config"
	"crosspromo/internal/delivery/http/response"
	"crosspromo/internal/domain/entity"
	"crosspromo/internal/infra/mapsurface"
	"crosspromo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	Config    *config.Config
	PartnerUC usecase.PartnerUsecase
}

// MapHandler serves the dashboard map: provider settings, markers and marker events
type MapHandler struct {
	mapCfg    config.MapConfig
	partnerUC usecase.PartnerUsecase
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	var mapCfg config.MapConfig
	if params.Config.Map != nil {
		mapCfg = *params.Config.Map
	}

	return &MapHandler{
		mapCfg:    mapCfg,
		partnerUC: params.PartnerUC,
	}
}

// MapConfigResponse is the map provider setup the browser needs
type MapConfigResponse struct {
	AccessToken string             `json:"accessToken"`
	StyleURL    string             `json:"styleUrl"`
	Center      entity.Coordinates `json:"center"`
	Zoom        float64            `json:"zoom"`
}

// MarkersResponse is the viewer's markers as GeoJSON
type MarkersResponse struct {
	FeatureCollection *geojson.FeatureCollection `json:"featureCollection"`
	Unplaced          int                        `json:"unplaced"`
}

// MarkerEventRequest represents a click or hover raised on a marker in the browser
type MarkerEventRequest struct {
	Type    string `json:"type" validate:"required,oneof=click mouseenter mouseleave"`
	StoreID string `json:"storeId" validate:"required"`
}

// MarkerEventResponse carries the dialog to open, if any, and the updated markers
type MarkerEventResponse struct {
	Dialog  *entity.DialogIntent `json:"dialog,omitempty"`
	Markers *MarkersResponse     `json:"markers"`
}

// GetMapConfig handles retrieving the public map provider settings
func (h *MapHandler) GetMapConfig(c echo.Context) error {
	return response.Success(c, http.StatusOK, MapConfigResponse{
		AccessToken: h.mapCfg.AccessToken,
		StyleURL:    h.mapCfg.StyleURL,
		Center:      entity.Coordinates{Latitude: h.mapCfg.CenterLat, Longitude: h.mapCfg.CenterLng},
		Zoom:        h.mapCfg.Zoom,
	}, "")
}

// GetMarkers handles retrieving the markers on the viewer's map
func (h *MapHandler) GetMarkers(c echo.Context) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return unauthorized(c)
	}

	markers, err := h.partnerUC.GetMapMarkers(c.Request().Context(), viewer)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMarkersResponse(markers), "")
}

// HandleMarkerEvent handles a browser event raised on a marker
func (h *MapHandler) HandleMarkerEvent(c echo.Context) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req MarkerEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid marker event")
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, err)
	}

	event := entity.MarkerEvent{Type: entity.MarkerEventType(req.Type), StoreID: req.StoreID}
	result, err := h.partnerUC.HandleMarkerEvent(c.Request().Context(), viewer, event)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, MarkerEventResponse{
		Dialog:  result.Dialog,
		Markers: toMarkersResponse(result.Markers),
	}, "")
}

func toMarkersResponse(markers *usecase.MapMarkers) *MarkersResponse {
	if markers == nil {
		return &MarkersResponse{FeatureCollection: mapsurface.FeatureCollection(nil)}
	}

	return &MarkersResponse{
		FeatureCollection: mapsurface.FeatureCollection(markers.Markers),
		Unplaced:          markers.Unplaced,
	}
}
