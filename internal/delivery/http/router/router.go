// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crosspromo/internal/delivery/http/middleware"
	"crosspromo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PartnerHandler  *handler.PartnerHandler
	MapHandler      *handler.MapHandler
	StickerHandler  *handler.StickerHandler
	RealtimeHandler *handler.RealtimeHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimiter     *middleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	partnerHandler  *handler.PartnerHandler
	mapHandler      *handler.MapHandler
	stickerHandler  *handler.StickerHandler
	realtimeHandler *handler.RealtimeHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimiter     *middleware.RateLimiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		partnerHandler:  params.PartnerHandler,
		mapHandler:      params.MapHandler,
		stickerHandler:  params.StickerHandler,
		realtimeHandler: params.RealtimeHandler,
		authMiddleware:  params.AuthMiddleware,
		rateLimiter:     params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")

	// Public map provider settings
	v1.GET("/map/config", r.mapHandler.GetMapConfig)

	// Browsers cannot set headers on WebSocket handshakes
	v1.GET("/ws", r.realtimeHandler.Connect, r.authMiddleware.AuthenticateQuery)

	api := v1.Group("")
	api.Use(r.authMiddleware.Authenticate)
	{
		api.GET("/partners", r.partnerHandler.GetPartners)
		api.POST("/partners/refresh", r.partnerHandler.RefreshPartners)
		api.PUT("/partners/reference-point", r.partnerHandler.SetReferencePoint)
		api.POST("/partners/:storeId/requests", r.partnerHandler.RequestPartnership, r.rateLimiter.Limit)
		api.POST("/partnerships/:partnershipId/cancel", r.partnerHandler.CancelPartnership, r.rateLimiter.Limit)

		api.GET("/map/markers", r.mapHandler.GetMarkers)
		api.POST("/map/events", r.mapHandler.HandleMarkerEvent)

		api.DELETE("/session", r.partnerHandler.CloseSession)

		api.POST("/offers/:offerId/sticker", r.stickerHandler.ComposeSticker, r.rateLimiter.Limit)
		api.GET("/offers/:offerId/sticker", r.stickerHandler.GetSticker)
	}
}
