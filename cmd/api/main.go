// Package main is the entrypoint for the sandbox users API server.
package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aisanity/sandbox-api/internal/config"
	"github.com/aisanity/sandbox-api/internal/handler"
	"github.com/aisanity/sandbox-api/internal/metrics"
	"github.com/aisanity/sandbox-api/internal/middleware"
	"github.com/aisanity/sandbox-api/internal/server"
	"github.com/aisanity/sandbox-api/internal/store"
)

func main() {
	startedAt := time.Now()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	users := store.NewUserStore(time.Now)
	recorder := metrics.NewInMemory()

	r := setupRouter(routerDeps{
		cfg:       cfg,
		logger:    logger,
		users:     users,
		recorder:  recorder,
		startedAt: startedAt,
	})

	srv := server.New(
		r,
		cfg.Addr(),
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	// Users live only in memory; record what is dropped on exit.
	srv.OnShutdown("user-store", func(ctx context.Context) error {
		logger.Info("discarding in-memory users", "count", users.Count())
		return nil
	})

	logger.Info("starting server",
		"addr", cfg.Addr(),
		"env", cfg.AppEnv,
		"metrics_enabled", cfg.MetricsEnabled,
	)
	logger.Info("try it",
		"root", "curl http://localhost:"+portString(cfg),
		"health", "curl http://localhost:"+portString(cfg)+"/health",
		"users", "curl http://localhost:"+portString(cfg)+"/api/users",
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type routerDeps struct {
	cfg       *config.Config
	logger    *slog.Logger
	users     *store.UserStore
	recorder  *metrics.InMemoryRecorder
	startedAt time.Time
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(d routerDeps) *chi.Mux {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = d.cfg.GetCORSAllowedOrigins()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.GetHead)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.logger, d.recorder))
	r.Use(middleware.Recoverer(d.logger, d.cfg.IsDevelopment()))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: d.cfg.IsDevelopment()}))
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.MaxBodySize(d.cfg.MaxRequestBodySize))

	h := handler.New(d.cfg.AppEnv)
	healthHandler := handler.NewHealthHandler(d.startedAt)
	userHandler := handler.NewUserHandler(d.users, d.recorder, d.logger)

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/", h.Hello)
	r.Get("/health", healthHandler.Health)

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
	})

	if d.cfg.MetricsEnabled {
		metricsHandler := handler.NewMetricsHandler(d.recorder, d.users)
		r.Get("/metrics", metricsHandler.Metrics)
	}

	return r
}

func portString(cfg *config.Config) string {
	return strconv.Itoa(cfg.AppPort)
}
