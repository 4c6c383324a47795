package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crosspromo/config"
	deliverycontext "crosspromo/internal/delivery/context"
	"crosspromo/internal/domain/entity"
	domainerrors "crosspromo/internal/domain/errors"
	"crosspromo/internal/domain/service"
	"crosspromo/internal/errors"
	mockService "crosspromo/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	return e
}

func echoViewer(c echo.Context) error {
	viewer, ok := GetViewer(c)
	if !ok {
		return c.String(http.StatusTeapot, "no viewer")
	}

	return c.JSON(http.StatusOK, viewer)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("good").Return(&service.Claims{Subject: "viewer-1", Roles: []string{"retailer"}}, nil).Maybe()
	tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired")).Maybe()

	m := NewAuthMiddleware(tokens)
	e := newTestEcho()
	e.GET("/header", echoViewer, m.Authenticate)
	e.GET("/query", echoViewer, m.AuthenticateQuery)

	tests := []struct {
		name   string
		target string
		header string
		status int
	}{
		{name: "bearer header", target: "/header", header: "Bearer good", status: http.StatusOK},
		{name: "lowercase scheme", target: "/header", header: "bearer good", status: http.StatusOK},
		{name: "missing header", target: "/header", status: http.StatusUnauthorized},
		{name: "not bearer", target: "/header", header: "Basic Zm9v", status: http.StatusUnauthorized},
		{name: "invalid token", target: "/header", header: "Bearer bad", status: http.StatusUnauthorized},
		{name: "query token not accepted on api routes", target: "/header?token=good", status: http.StatusUnauthorized},
		{name: "query token", target: "/query?token=good", status: http.StatusOK},
		{name: "header preferred on ws", target: "/query?token=bad", header: "Bearer good", status: http.StatusOK},
		{name: "missing query token", target: "/query", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				var viewer entity.Viewer
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &viewer))
				assert.Equal(t, entity.Viewer{ID: "viewer-1", AccessToken: "good"}, viewer)
			}
		})
	}
}

func TestAuthMiddleware_ScopesRequestContext(t *testing.T) {
	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("good").Return(&service.Claims{Subject: "viewer-1"}, nil)

	m := NewAuthMiddleware(tokens)
	e := newTestEcho()
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.ViewerID(c.Request().Context()))
	}, m.Authenticate)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "viewer-1", rec.Body.String())
}

func TestRateLimiter_Limit(t *testing.T) {
	rl := newRateLimiter(&config.RateLimitConfig{RequestsPerMinute: 60, Burst: 2}, slog.New(slog.DiscardHandler))
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	e := newTestEcho()
	e.POST("/limited", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			SetViewer(c, entity.Viewer{ID: c.QueryParam("viewer")})

			return next(c)
		}
	}, rl.Limit)

	call := func(viewer string) int {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/limited?viewer="+viewer, nil))

		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, call("v1"))
	assert.Equal(t, http.StatusNoContent, call("v1"))
	assert.Equal(t, http.StatusTooManyRequests, call("v1"))

	// budgets are per viewer
	assert.Equal(t, http.StatusNoContent, call("v2"))

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, call("v1"))
}

func TestRateLimiter_DisabledAndCleanup(t *testing.T) {
	disabled := newRateLimiter(&config.RateLimitConfig{}, slog.New(slog.DiscardHandler))
	for range 100 {
		require.True(t, disabled.Allow("v1"))
	}

	rl := newRateLimiter(&config.RateLimitConfig{RequestsPerMinute: 60, Burst: 1}, slog.New(slog.DiscardHandler))
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("v1")
	now = now.Add(5 * time.Minute)
	rl.Allow("v2")

	now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, rl.cleanup())
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "app error", err: errors.Wrap(domainerrors.ErrStoreNotFound, "lookup"), status: http.StatusNotFound, code: "STORE_NOT_FOUND"},
		{name: "echo error", err: echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), status: http.StatusMethodNotAllowed, code: "HTTP_ERROR"},
		{name: "echo not found", err: echo.ErrNotFound, status: http.StatusNotFound, code: "HTTP_ERROR"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(tt.err, c)

			require.Equal(t, tt.status, rec.Code)

			var body domainerrors.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}
