package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/typespeed-backend/internal/config"
	"github.com/heartmarshall/typespeed-backend/internal/transport/middleware"
	"github.com/heartmarshall/typespeed-backend/internal/transport/rest"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

type routerDeps struct {
	logger   *slog.Logger
	cfg      *config.Config
	registry *prometheus.Registry
	metrics  *middleware.HTTPMetrics
	limiter  *middleware.RateLimiter
	tokens   tokenValidator

	health      *rest.HealthHandler
	auth        *rest.AuthHandler
	users       *rest.UserHandler
	recovery    *rest.RecoveryHandler
	leaderboard *rest.LeaderboardHandler
}

// newRouter registers every route and wraps the mux in the global middleware
// chain: request id, panic recovery, access log, metrics, CORS, bearer auth.
func newRouter(d routerDeps) http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.Capture(h))
	}
	limited := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.Capture(d.limiter.Limit(d.cfg.RateLimit.AuthPerMinute)(h)))
	}

	// Probes and metrics.
	handle("GET /{$}", d.health.Root)
	handle("GET /live", d.health.Live)
	handle("GET /ready", d.health.Ready)
	handle("GET /health", d.health.Health)
	mux.Handle("GET /metrics", middleware.Capture(promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{})))

	// Accounts.
	limited("POST /api/users/create", d.auth.Create)
	limited("POST /api/users/login", d.auth.Login)
	limited("POST /api/users/forgot-password", d.recovery.ForgotPassword)
	limited("POST /api/users/reset-password/{token}", d.recovery.ResetPassword)

	handle("POST /api/users/progress", d.users.RecordProgress)
	handle("GET /api/users/{userId}", d.users.Get)
	handle("PUT /api/users/{userId}", d.users.Update)
	handle("GET /api/users/{userId}/bestTest", d.users.BestTest)
	handle("GET /api/users/{userId}/allTests", d.users.AllTests)

	handle("GET /api/leaderboard/{board}", d.leaderboard.Top)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(d.logger),
		middleware.Logger(d.logger),
		d.metrics.Middleware(),
		middleware.CORS(d.cfg.CORS),
		middleware.Auth(d.tokens),
	)(mux)
}
