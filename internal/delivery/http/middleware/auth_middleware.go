package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "crosspromo/internal/delivery/context"
	"crosspromo/internal/delivery/http/response"
	"crosspromo/internal/domain/entity"
	"crosspromo/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyViewer = "viewer"
	contextKeyRoles  = "roles"

	// tokenQueryParam carries the token for browser WebSocket handshakes, which cannot set headers.
	tokenQueryParam = "token"
)

// AuthMiddleware validates the platform access token and exposes the viewer to handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a Bearer token in the Authorization header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, false)
}

// AuthenticateQuery also accepts the token as the ?token= query parameter.
func (m *AuthMiddleware) AuthenticateQuery(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, true)
}

func (m *AuthMiddleware) authenticate(next echo.HandlerFunc, allowQuery bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok && allowQuery {
			tokenString = c.QueryParam(tokenQueryParam)
			ok = tokenString != ""
		}
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing or malformed")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(contextKeyViewer, entity.Viewer{ID: claims.Subject, AccessToken: tokenString})
		c.Set(contextKeyRoles, claims.Roles)

		ctx := deliverycontext.WithViewerID(c.Request().Context(), claims.Subject)
		if logger := deliverycontext.Logger(ctx, nil); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("viewer_id", claims.Subject)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetViewer returns the viewer set by Authenticate.
func GetViewer(c echo.Context) (entity.Viewer, bool) {
	viewer, ok := c.Get(contextKeyViewer).(entity.Viewer)
	if !ok || viewer.ID == "" {
		return entity.Viewer{}, false
	}

	return viewer, true
}

// SetViewer stores the viewer on the context. Used by Authenticate and handler tests.
func SetViewer(c echo.Context, viewer entity.Viewer) {
	c.Set(contextKeyViewer, viewer)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)

	return token, token != ""
}
