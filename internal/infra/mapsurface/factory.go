package mapsurface

import (
	"log/slog"
	"strings"

	"crosspromo/config"
	"crosspromo/internal/domain/entity"
	"crosspromo/internal/domain/service"
	"crosspromo/internal/errors"
)

// ErrMissingAccessToken is returned when no public map token is configured.
var ErrMissingAccessToken = errors.New("map access token is required")

// Factory creates one surface per viewer session.
type Factory struct {
	logger *slog.Logger
}

// NewFactory checks the map provider credentials and returns the surface factory.
func NewFactory(cfg *config.Config, logger *slog.Logger) (*Factory, error) {
	if cfg.Map == nil || strings.TrimSpace(cfg.Map.AccessToken) == "" {
		return nil, errors.WithStack(ErrMissingAccessToken)
	}

	return &Factory{logger: logger}, nil
}

// NewSurface creates the surface bound to the viewer's dashboard.
func (f *Factory) NewSurface(viewer entity.Viewer) (service.MapSurface, error) {
	f.logger.Debug("Map surface created", slog.String("viewer_id", viewer.ID))

	return NewSurface(viewer.ID), nil
}
