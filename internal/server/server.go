// Package server exposes the reporting surface over HTTP: the snapshot
// endpoint, the precomputed panel endpoint, and the session gate in front
// of them.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"pulseboard/internal/config"
	"pulseboard/internal/snapshot"

	"github.com/rs/zerolog/log"
)

// Server wires the composer behind the HTTP handlers.
type Server struct {
	composer *snapshot.Composer
	auth     config.AuthConfig
	mux      *http.ServeMux
}

// New creates a server over the given composer.
func New(composer *snapshot.Composer, auth config.AuthConfig) *Server {
	s := &Server{
		composer: composer,
		auth:     auth,
		mux:      http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	s.mux.HandleFunc("GET /api/auth/verify", s.handleVerify)
	s.mux.HandleFunc("POST /api/auth/logout", s.handleLogout)
	s.mux.HandleFunc("GET /api/dashboard", s.requireSession(s.handleDashboard))
	s.mux.HandleFunc("GET /api/metrics", s.requireSession(s.handleMetrics))

	return s
}

// ServeHTTP dispatches to the internal mux with request logging.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	log.Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Dur("elapsed", time.Since(start)).
		Msg("Request handled")
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("Reporting server listening")
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return httpServer.ListenAndServe()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
