package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"crosspromo/config"
	domainerrors "crosspromo/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTTL         = 10 * time.Minute
)

// RateLimiterParams holds the dependencies of the rate limiter
type RateLimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// RateLimiter enforces a per-viewer token bucket on mutation routes.
type RateLimiter struct {
	limit  rate.Limit
	burst  int
	logger *slog.Logger
	now    func() time.Time

	mu       sync.Mutex
	limiters map[string]*limiterEntry
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates the limiter and runs its cleanup loop for the app lifetime.
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	rl := newRateLimiter(params.Config.RateLimit, params.Logger)

	if params.Lc != nil {
		ctx, cancel := context.WithCancel(context.Background())
		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go rl.cleanupLoop(ctx)

				return nil
			},
			OnStop: func(context.Context) error {
				cancel()

				return nil
			},
		})
	}

	return rl
}

func newRateLimiter(cfg *config.RateLimitConfig, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		logger:   logger,
		now:      time.Now,
		limiters: make(map[string]*limiterEntry),
	}
	if cfg != nil && cfg.RequestsPerMinute > 0 {
		rl.limit = rate.Limit(float64(cfg.RequestsPerMinute) / 60.0)
		rl.burst = max(cfg.Burst, 1)
	}

	return rl
}

// Limit rejects requests of a viewer that exceeded its budget. It must run after Authenticate.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.RealIP()
		if viewer, ok := GetViewer(c); ok {
			key = viewer.ID
		}

		if !rl.Allow(key) {
			rl.logger.Warn("Rate limited", slog.String("key", key), slog.String("path", c.Path()))

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}

// Allow reports whether a request for key fits the budget. A zero limit disables limiting.
func (rl *RateLimiter) Allow(key string) bool {
	if rl.limit == 0 {
		return true
	}

	now := rl.now()

	rl.mu.Lock()
	entry, ok := rl.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = now
	rl.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.cleanup()
		}
	}
}

// cleanup drops limiters idle for longer than limiterIdleTTL and returns how many remain.
func (rl *RateLimiter) cleanup() int {
	cutoff := rl.now().Add(-limiterIdleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, key)
		}
	}

	return len(rl.limiters)
}
