// Package handler holds the echo handlers of the dashboard API.
package handler

import (
	"crosspromo/internal/delivery/http/middleware"
	"crosspromo/internal/delivery/http/response"
	"crosspromo/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// unauthorized answers requests that reached a handler without a viewer.
func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid viewer in token")
}

func viewerFrom(c echo.Context) (entity.Viewer, bool) {
	return middleware.GetViewer(c)
}
