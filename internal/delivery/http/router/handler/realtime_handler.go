package handler

import (
	"log/slog"

	"crosspromo/internal/infra/realtime"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	Hub    *realtime.Hub
	Logger *slog.Logger
}

// RealtimeHandler upgrades dashboard connections for toast delivery
type RealtimeHandler struct {
	hub    *realtime.Hub
	logger *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	return &RealtimeHandler{hub: params.Hub, logger: params.Logger}
}

// Connect serves the toast WebSocket until the browser disconnects.
func (h *RealtimeHandler) Connect(c echo.Context) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return unauthorized(c)
	}

	// a failed upgrade has already written its response
	if err := h.hub.Serve(c.Response(), c.Request(), viewer.ID); err != nil {
		h.logger.Debug("WebSocket upgrade failed", slog.String("viewerID", viewer.ID), slog.Any("error", err))
	}

	return nil
}
