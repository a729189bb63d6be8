// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

// Command api is the entry point for the Aticom content API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Initialize JWT token service, object storage, and the mailer.
//  7. Wire domain services and HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/api"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/auth"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/careers"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/catalog/bathroom"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/catalog/tile"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/content/hero"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/content/news"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/content/partner"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/content/section"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/content/sector"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/content/team"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/media"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/config"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/constants"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/mailer"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/migration"
	pgstore "github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/postgres"
	redisstore "github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/redis"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/sec"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/storage"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/site/seo"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/site/settings"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Platform Services ──────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	objectStore, err := storage.New(startupCtx, cfg, log)
	must(log, err, "connect to object storage")

	// The mailer is optional: without SMTP settings, application
	// notifications are silently disabled.
	var notifier careers.Notifier
	if cfg.MailerConfigured() {
		smtpMailer, err := mailer.New(cfg, log)
		must(log, err, "initialize mailer")
		notifier = smtpMailer
	} else {
		log.Warn("mailer_disabled", slog.String("reason", "SMTP_HOST not set"))
	}

	contentCache := cache.New(cache.NewRedisBackend(rdb), log)

	// ── 7. Health Handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	authService := auth.NewService(auth.NewPostgresRepository(pool), jwtSvc, log)
	sectorService := sector.NewService(sector.NewPostgresRepository(pool), contentCache, log)
	heroService := hero.NewService(hero.NewPostgresRepository(pool), contentCache, log)
	newsService := news.NewService(news.NewPostgresRepository(pool), contentCache, log)
	teamService := team.NewService(team.NewPostgresRepository(pool), contentCache, log)
	partnerService := partner.NewService(partner.NewPostgresRepository(pool), contentCache, log)
	sectionService := section.NewService(section.NewPostgresRepository(pool), contentCache, log)
	tileService := tile.NewService(tile.NewPostgresRepository(pool), contentCache, log)
	bathroomService := bathroom.NewService(bathroom.NewPostgresRepository(pool), contentCache, log)
	seoService := seo.NewService(seo.NewPostgresRepository(pool), contentCache, log)
	settingsService := settings.NewService(settings.NewPostgresRepository(pool), contentCache, log)
	careersService := careers.NewService(careers.NewPostgresRepository(pool), contentCache, notifier, cfg.CareersInbox, log)
	mediaService := media.NewService(objectStore, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService),
		Sector:    sector.NewHandler(sectorService),
		Hero:      hero.NewHandler(heroService),
		News:      news.NewHandler(newsService),
		Team:      team.NewHandler(teamService),
		Partner:   partner.NewHandler(partnerService),
		Section:   section.NewHandler(sectionService),
		Tile:      tile.NewHandler(tileService),
		Bathroom:  bathroom.NewHandler(bathroomService),
		SEO:       seo.NewHandler(seoService),
		Settings:  settings.NewHandler(settingsService),
		Careers:   careers.NewHandler(careersService),
		Media:     media.NewHandler(mediaService),
	}

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failed",
			slog.String("step", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
