// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turathdz/turath/internal/core/comment"
	"github.com/turathdz/turath/internal/core/event"
	"github.com/turathdz/turath/internal/core/person"
	"github.com/turathdz/turath/internal/core/place"
	"github.com/turathdz/turath/internal/core/taxonomy"
	"github.com/turathdz/turath/internal/core/work"
	"github.com/turathdz/turath/internal/platform/config"
	"github.com/turathdz/turath/internal/platform/constants"
	"github.com/turathdz/turath/internal/platform/middleware"
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

	// Work handles the catalogue: submission, discovery, moderation.
	Work *work.Handler

	// Place handles heritage sites, proximity search and statistics.
	Place *place.Handler

	// Event handles the cultural agenda.
	Event *event.Handler

	// Person handles people and the contribution graph.
	Person *person.Handler

	// Taxonomy manages categories, tags, languages, materials, techniques
	// and publishers.
	Taxonomy *taxonomy.Handler

	// Comment handles comment threads on works and events.
	Comment *comment.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// Comment threads are nested resources: their listing and posting routes
// mount inside the work and event routers, while per-comment operations
// get their own /comments group.
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
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		workRoutes := h.Work.Routes()
		workRoutes.Mount("/{id}/comments", h.Comment.TargetRoutes(comment.TargetWork))
		api.Mount("/works", workRoutes)

		eventRoutes := h.Event.Routes()
		eventRoutes.Mount("/{id}/comments", h.Comment.TargetRoutes(comment.TargetEvent))
		api.Mount("/events", eventRoutes)

		api.Mount("/places", h.Place.Routes())
		api.Mount("/people", h.Person.Routes())
		api.Mount("/comments", h.Comment.Routes())
		api.Mount("/taxonomy", h.Taxonomy.Routes())
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
