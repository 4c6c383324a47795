package handler

import (
	"log/slog"
	"net/http"

	"crosspromo/internal/delivery/http/response"
	"crosspromo/internal/domain/entity"
	"crosspromo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PartnerHandlerParams holds dependencies for PartnerHandler, injected by Fx.
type PartnerHandlerParams struct {
	fx.In

	PartnerUC usecase.PartnerUsecase
	Logger    *slog.Logger
}

// PartnerHandler serves the partner list and the request/cancel workflow
type PartnerHandler struct {
	partnerUC usecase.PartnerUsecase
	logger    *slog.Logger
}

// NewPartnerHandler is the constructor for PartnerHandler
func NewPartnerHandler(params PartnerHandlerParams) *PartnerHandler {
	return &PartnerHandler{
		partnerUC: params.PartnerUC,
		logger:    params.Logger,
	}
}

// ReferencePointRequest represents the request body for setting the distance reference point
type ReferencePointRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// GetPartners handles retrieving the partner view
func (h *PartnerHandler) GetPartners(c echo.Context) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return unauthorized(c)
	}

	view, err := h.partnerUC.GetPartnerView(c.Request().Context(), viewer)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Partners retrieved successfully")
}

// RefreshPartners handles reloading candidates and own locations
func (h *PartnerHandler) RefreshPartners(c echo.Context) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return unauthorized(c)
	}

	view, err := h.partnerUC.RefreshPartners(c.Request().Context(), viewer)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Partners refreshed successfully")
}

// SetReferencePoint handles moving the point distances are measured from
func (h *PartnerHandler) SetReferencePoint(c echo.Context) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req ReferencePointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid reference point")
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, err)
	}

	point := entity.Coordinates{Latitude: req.Latitude, Longitude: req.Longitude}
	view, err := h.partnerUC.SetReferencePoint(c.Request().Context(), viewer, point)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Reference point updated successfully")
}

// RequestPartnership handles sending a partnership request to a store
func (h *PartnerHandler) RequestPartnership(c echo.Context) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var input usecase.RequestPartnershipInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid partnership request")
	}
	input.TargetStoreID = c.Param("storeId")

	if err := c.Validate(&input); err != nil {
		return response.AppError(c, err)
	}

	view, err := h.partnerUC.RequestPartnership(c.Request().Context(), viewer, &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view, "Partnership request sent")
}

// CancelPartnership handles ending an active partnership
func (h *PartnerHandler) CancelPartnership(c echo.Context) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return unauthorized(c)
	}

	view, err := h.partnerUC.CancelPartnership(c.Request().Context(), viewer, c.Param("partnershipId"))
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Partnership cancelled")
}

// CloseSession handles releasing the viewer's session when the dashboard unmounts
func (h *PartnerHandler) CloseSession(c echo.Context) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.partnerUC.CloseSession(c.Request().Context(), viewer.ID); err != nil {
		h.logger.Warn("Failed to close session cleanly", slog.String("viewerID", viewer.ID), slog.Any("error", err))
	}

	return c.NoContent(http.StatusNoContent)
}
