// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	platform "github.com/thoriumlabs/platform-api"
	"github.com/thoriumlabs/platform-api/internal/activity"
	"github.com/thoriumlabs/platform-api/internal/admin"
	"github.com/thoriumlabs/platform-api/internal/assistant"
	"github.com/thoriumlabs/platform-api/internal/auth"
	"github.com/thoriumlabs/platform-api/internal/config"
	"github.com/thoriumlabs/platform-api/internal/core"
	"github.com/thoriumlabs/platform-api/internal/feed"
	"github.com/thoriumlabs/platform-api/internal/health"
	"github.com/thoriumlabs/platform-api/internal/middleware"
	"github.com/thoriumlabs/platform-api/internal/server"
	"github.com/thoriumlabs/platform-api/internal/simulation"
	"github.com/thoriumlabs/platform-api/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if err := db.Migrate(ctx, platform.Migrations); err != nil {
		return err
	}
	logger.Info("migrations applied")

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	authRepo := auth.NewRepository(db.DB)
	authSvc := auth.NewService(authRepo, userSvc, cfg.Session.Expiry)
	authHandler := auth.NewHandler(authSvc)

	simulationRepo := simulation.NewRepository(db.DB)
	simulationSvc := simulation.NewService(simulationRepo)
	simulationHandler := simulation.NewHandler(simulationSvc)

	activityRepo := activity.NewRepository(db.DB)
	activitySvc := activity.NewService(activityRepo, simulationSvc, userSvc, logger)
	activityHandler := activity.NewHandler(activitySvc)

	asker := assistant.NewAsker(cfg.Assistant)
	assistantHandler := assistant.NewHandler(asker)
	if cfg.Assistant.Enabled() {
		logger.Info("knowledge assistant enabled", "model", cfg.Assistant.Model)
	} else {
		logger.Warn("knowledge assistant disabled, no API key configured")
	}

	feedSvc := feed.NewService(redis.Client, logger)
	feedHandler := feed.NewHandler(feedSvc)

	healthHandler := health.NewHandler(db, redis)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
		Sweeper:    authSvc,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(authSvc)
	optionalAuth := middleware.OptionalAuth(authSvc)
	adminOnly := middleware.RequireAdmin

	// Simulations, the assistant and the feeds get per-role budgets on top
	// of the global IP limit; researchers run batches.
	roleLimiter := middleware.RoleRateLimiter(
		redis.Client,
		middleware.DefaultRoleLimits,
	)
	roleLimited := func(next http.Handler) http.Handler {
		return authenticator(roleLimiter(next))
	}

	router.Route("/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)
		userHandler.RegisterRoutes(r, authenticator)
		simulationHandler.RegisterRoutes(r, roleLimited)
		activityHandler.RegisterRoutes(r, authenticator, optionalAuth)
		assistantHandler.RegisterRoutes(r, roleLimited)
		feedHandler.RegisterRoutes(r, roleLimited)

		userHandler.RegisterAdminRoutes(r, authenticator, adminOnly)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	sweepDone := startSessionSweeper(ctx, authSvc, cfg.Session.SweepInterval, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	<-sweepDone

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// startSessionSweeper deletes expired sessions on a fixed interval until
// ctx is cancelled. The returned channel closes when the sweeper exits.
func startSessionSweeper(
	ctx context.Context,
	svc *auth.Service,
	interval time.Duration,
	logger *slog.Logger,
) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sweepCtx, cancel := context.WithTimeout(
					context.Background(),
					30*time.Second,
				)
				swept, err := svc.SweepExpired(sweepCtx)
				cancel()

				if err != nil {
					logger.Error("session sweep failed", "error", err)
					continue
				}
				if swept > 0 {
					logger.Info("expired sessions swept", "count", swept)
				}
			}
		}
	}()

	return done
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
