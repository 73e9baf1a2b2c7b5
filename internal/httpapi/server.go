// v0
// internal/httpapi/server.go

// Package httpapi is the presentation-collaborator surface: it serves the engine's
// structured outputs as JSON for a polling display and hosts the auth stub.
package httpapi

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rohithdvg2005-eng/solar-microgrid/internal/engine"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/session"
)

type Server struct {
	Log      *slog.Logger
	Engine   *engine.Engine
	Sessions *session.Manager
	Limiter  *session.Limiter
}

// NewRouter wires all routes. Data endpoints under /api/v1 require a bearer token;
// auth, health and metrics stay open.
func (s *Server) NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.HandleFunc("/api/v1/auth/otp", s.handleOTP).Methods("POST")
	r.HandleFunc("/api/v1/auth/login", s.handleLogin).Methods("POST")
	r.HandleFunc("/api/v1/auth/logout", s.requireAuth(s.handleLogout)).Methods("POST")

	r.HandleFunc("/api/v1/snapshot", s.requireAuth(s.handleSnapshot)).Methods("GET")
	r.HandleFunc("/api/v1/alerts", s.requireAuth(s.handleAlerts)).Methods("GET")
	r.HandleFunc("/api/v1/prediction", s.requireAuth(s.handlePrediction)).Methods("GET")
	r.HandleFunc("/api/v1/series", s.requireAuth(s.handleSeries)).Methods("GET")

	return r
}

// NewHTTPServer wraps the router with request logging and the usual timeouts.
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handlers.LoggingHandler(os.Stdout, s.NewRouter()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
