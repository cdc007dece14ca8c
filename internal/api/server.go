// Package api provides REST API endpoints for browsing stored conversion
// runs.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"caai_logbook/internal/form"
	"caai_logbook/internal/storage"
)

// Server exposes stored runs over HTTP.
type Server struct {
	db          *storage.DB
	port        int
	authEnabled bool
	apiKeys     map[string]bool // Simple API key auth (when enabled).
}

// Config holds configuration for the run API server.
type Config struct {
	Port        int
	AuthEnabled bool
	APIKeys     []string // List of valid API keys.
}

// NewServer creates a new run API server.
func NewServer(db *storage.DB, cfg Config) *Server {
	keys := make(map[string]bool)
	for _, k := range cfg.APIKeys {
		if k != "" {
			keys[k] = true
		}
	}

	return &Server{
		db:          db,
		port:        cfg.Port,
		authEnabled: cfg.AuthEnabled,
		apiKeys:     keys,
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	r := chi.NewRouter()

	// Standard middleware.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Mount("/api/v1", s.Router())

	addr := ":" + strconv.Itoa(s.port)
	log.Printf("Run API starting at http://localhost%s", addr)
	if s.authEnabled {
		log.Printf("Authentication: ENABLED (API key required)")
	} else {
		log.Printf("Authentication: DISABLED (open access)")
	}

	return http.ListenAndServe(addr, r)
}

// Router returns the configured chi router for embedding in other servers
// and for tests.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	if s.authEnabled {
		r.Use(s.authMiddleware)
	}

	r.Get("/health", s.handleHealth)
	r.Get("/runs", s.handleListRuns)
	r.Get("/runs/{id}", s.handleGetRun)
	r.Get("/runs/{id}/flights", s.handleRunFlights)
	r.Get("/runs/{id}/form", s.handleRunForm)
	r.Delete("/runs/{id}", s.handleDeleteRun)

	return r
}

// authMiddleware validates API key authentication.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check X-API-Key header first.
		apiKey := r.Header.Get("X-API-Key")

		// Fall back to Authorization: Bearer <key>.
		if apiKey == "" {
			auth := r.Header.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				apiKey = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if apiKey == "" {
			writeError(w, http.StatusUnauthorized, "API key required")
			return
		}
		if !s.apiKeys[apiKey] {
			writeError(w, http.StatusForbidden, "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	runs, err := s.db.ListRuns(limit)
	if err != nil {
		log.Printf("list runs: %v", err)
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(runs),
		"runs":  runs,
	})
}

func (s *Server) getRun(w http.ResponseWriter, r *http.Request) *storage.Run {
	id := chi.URLParam(r, "id")
	run, err := s.db.GetRun(id)
	if err != nil {
		log.Printf("get run %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "query failed")
		return nil
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "run not found")
		return nil
	}
	return run
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if run := s.getRun(w, r); run != nil {
		writeJSON(w, http.StatusOK, run)
	}
}

func (s *Server) handleRunFlights(w http.ResponseWriter, r *http.Request) {
	run := s.getRun(w, r)
	if run == nil {
		return
	}

	flights, err := s.db.FlightsForRun(run.ID)
	if err != nil {
		log.Printf("flights for run %s: %v", run.ID, err)
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id":  run.ID,
		"count":   len(flights),
		"flights": flights,
	})
}

func (s *Server) handleRunForm(w http.ResponseWriter, r *http.Request) {
	run := s.getRun(w, r)
	if run == nil {
		return
	}
	writeJSON(w, http.StatusOK, form.Build(run.Values))
}

func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	run := s.getRun(w, r)
	if run == nil {
		return
	}
	if err := s.db.DeleteRun(run.ID); err != nil {
		log.Printf("delete run %s: %v", run.ID, err)
		writeError(w, http.StatusInternalServerError, "delete failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": run.ID})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
