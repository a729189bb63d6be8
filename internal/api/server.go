// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

Route layout:

  - /api/v1/...        public website reads and careers submissions
  - /api/v1/admin/...  authenticated CRUD panel, role-gated per route
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

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
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/config"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/constants"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/middleware"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/site/seo"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/site/settings"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the admin login and session surface.
	Auth *auth.Handler

	// Sector manages business sector pages.
	Sector *sector.Handler

	// Hero manages homepage hero slides.
	Hero *hero.Handler

	// News manages the news feed.
	News *news.Handler

	// Team manages team member profiles.
	Team *team.Handler

	// Partner manages partner logos.
	Partner *partner.Handler

	// Section manages keyed content blocks (vision, mission, contact, ...).
	Section *section.Handler

	// Tile manages the tile catalogue (collections, applications, installations).
	Tile *tile.Handler

	// Bathroom manages the bathroom solutions catalogue.
	Bathroom *bathroom.Handler

	// SEO manages per-route SEO metadata.
	SEO *seo.Handler

	// Settings manages the site-wide key/value settings.
	Settings *settings.Handler

	// Careers handles job positions and candidate applications.
	Careers *careers.Handler

	// Media handles admin file uploads.
	Media *media.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {

		// Public website surface. No auth required.
		api.Route("/auth", h.Auth.RegisterRoutes)
		api.Route("/sectors", h.Sector.RegisterRoutes)
		api.Route("/hero-slides", h.Hero.RegisterRoutes)
		api.Route("/news", h.News.RegisterRoutes)
		api.Route("/team", h.Team.RegisterRoutes)
		api.Route("/partners", h.Partner.RegisterRoutes)
		api.Route("/sections", h.Section.RegisterRoutes)
		api.Route("/tiles", h.Tile.RegisterRoutes)
		api.Route("/bathroom", h.Bathroom.RegisterRoutes)
		api.Route("/seo", h.SEO.RegisterRoutes)
		api.Route("/settings", h.Settings.RegisterRoutes)
		api.Route("/careers", h.Careers.RegisterRoutes)

		// Admin CRUD panel. Every group below requires a valid token;
		// role checks are applied per route group.
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireAuth)

			admin.Route("/sectors", h.Sector.RegisterAdminRoutes)
			admin.Route("/hero-slides", h.Hero.RegisterAdminRoutes)
			admin.Route("/news", h.News.RegisterAdminRoutes)
			admin.Route("/team", h.Team.RegisterAdminRoutes)
			admin.Route("/partners", h.Partner.RegisterAdminRoutes)
			admin.Route("/sections", h.Section.RegisterAdminRoutes)
			admin.Route("/tiles", h.Tile.RegisterAdminRoutes)
			admin.Route("/bathroom", h.Bathroom.RegisterAdminRoutes)
			admin.Route("/seo", h.SEO.RegisterAdminRoutes)
			admin.Route("/settings", h.Settings.RegisterAdminRoutes)
			admin.Route("/careers", h.Careers.RegisterAdminRoutes)
			admin.Route("/media", h.Media.RegisterAdminRoutes)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
