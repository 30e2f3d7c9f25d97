package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/typespeed-backend/internal/adapter/mail"
	"github.com/heartmarshall/typespeed-backend/internal/adapter/postgres"
	"github.com/heartmarshall/typespeed-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/typespeed-backend/internal/adapter/postgres/testresult"
	"github.com/heartmarshall/typespeed-backend/internal/adapter/redis"
	"github.com/heartmarshall/typespeed-backend/internal/adapter/redis/leaderboard"
	"github.com/heartmarshall/typespeed-backend/internal/auth"
	"github.com/heartmarshall/typespeed-backend/internal/config"
	authsvc "github.com/heartmarshall/typespeed-backend/internal/service/auth"
	"github.com/heartmarshall/typespeed-backend/internal/service/progress"
	"github.com/heartmarshall/typespeed-backend/internal/service/recovery"
	"github.com/heartmarshall/typespeed-backend/internal/service/user"
	"github.com/heartmarshall/typespeed-backend/internal/transport/middleware"
	"github.com/heartmarshall/typespeed-backend/internal/transport/rest"
)

// Run is the application entry point. It connects to PostgreSQL and Redis,
// wires services and handlers, and serves HTTP until ctx is cancelled. The
// mail dispatcher runs alongside the server and is drained on shutdown.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// --- Infrastructure ---

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	rdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var sender mail.Sender
	if cfg.Mail.SMTPEnabled() {
		smtp, err := mail.NewSMTPSender(cfg.Mail)
		if err != nil {
			return fmt.Errorf("create smtp sender: %w", err)
		}
		sender = smtp
	} else {
		logger.Warn("MAIL_SMTP_HOST not set; password reset emails will only be logged")
		sender = mail.NewLogSender(logger)
	}

	c, err := wire(cfg, logger, pool, rdb, registry, sender)
	if err != nil {
		return err
	}
	defer c.limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      c.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// --- Lifecycle ---

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.dispatcher.Run(gctx)
	})

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// components is the wired application minus its network listeners.
type components struct {
	handler    http.Handler
	dispatcher *mail.Dispatcher
	limiter    *middleware.RateLimiter
}

// wire builds repositories, services and handlers on top of live connections.
func wire(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	rdb goredis.Cmdable,
	registry *prometheus.Registry,
	sender mail.Sender,
) (*components, error) {
	dispatcher, err := mail.NewDispatcher(sender, cfg.Mail, logger, registry)
	if err != nil {
		return nil, fmt.Errorf("create mail dispatcher: %w", err)
	}

	httpMetrics, err := middleware.NewHTTPMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	// --- Repositories ---

	txManager := postgres.NewTxManager(pool)
	accounts := account.New(pool)
	results := testresult.New(pool)
	board := leaderboard.New(rdb)

	// --- Services ---

	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, accounts, hasher, jwtManager, cfg.Auth)
	userService := user.NewService(logger, accounts, results)
	progressService := progress.NewService(logger, accounts, results, board, txManager)
	recoveryService := recovery.NewService(logger, accounts, hasher, dispatcher, cfg.Auth, cfg.Mail)

	// --- Transport ---

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handler := newRouter(routerDeps{
		logger:   logger,
		cfg:      cfg,
		registry: registry,
		metrics:  httpMetrics,
		limiter:  limiter,
		tokens:   authService,
		health: rest.NewHealthHandler(BuildVersion(),
			rest.Check{Name: "database", Pinger: pool},
			rest.Check{Name: "redis", Pinger: board},
		),
		auth:        rest.NewAuthHandler(authService, logger),
		users:       rest.NewUserHandler(userService, progressService, logger),
		recovery:    rest.NewRecoveryHandler(recoveryService, logger),
		leaderboard: rest.NewLeaderboardHandler(progressService, logger),
	})

	return &components{handler: handler, dispatcher: dispatcher, limiter: limiter}, nil
}
