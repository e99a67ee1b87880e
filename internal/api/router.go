package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// healthProbeTimeout bounds each dependency check on /health.
const healthProbeTimeout = 2 * time.Second

// buildRouter creates the HTTP router with all routes and middleware.
//
// The route shape is part of the external contract with keypads and
// the admin UI: /login, /unlock, and /alert sit at the root, log reads
// and arm/disarm under /api.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Health check (no auth required)
	r.Get("/health", s.handleHealth)

	// Login issues tokens, so it cannot require one
	r.Post("/login", s.handleLogin)

	// Alerts come from sensors without sessions
	r.Post("/alert", s.handleAlert)

	// Log reads are open on the trusted panel network
	r.Get("/api/logs", s.handleLogs)

	// Token-bearing routes
	r.Group(func(r chi.Router) {
		r.Use(s.bearerTokenMiddleware)

		r.Post("/unlock", s.handleUnlock)
		r.Post("/lock", s.handleLock)
		r.Post("/api/arm", s.handleArm)
		r.Post("/api/disarm", s.handleDisarm)
	})

	return r
}

// handleHealth returns the server health status plus one line per
// registered dependency probe. Any failing probe degrades the overall
// status but the endpoint still answers 200; orchestrators that want
// hard failures can inspect the per-check values.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	checks := make(map[string]string, len(s.checks))

	for name, checker := range s.checks {
		ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
		if err := checker.HealthCheck(ctx); err != nil {
			checks[name] = err.Error()
			status = "degraded"
		} else {
			checks[name] = "ok"
		}
		cancel()
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  status,
		"version": s.version,
		"checks":  checks,
	})
}
