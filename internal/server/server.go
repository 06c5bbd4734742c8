package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/braindash/braindash/internal/categorize"
	"github.com/braindash/braindash/internal/store"
)

// Server is the braindash HTTP API server.
type Server struct {
	db          *store.DB
	categorizer categorize.Categorizer
	handler     http.Handler
	version     string
	started     time.Time
}

// New creates a new Server with the given database, categorizer and version
// string. The categorizer is fixed for the process lifetime.
func New(db *store.DB, categorizer categorize.Categorizer, version string) *Server {
	s := &Server{
		db:          db,
		categorizer: categorizer,
		version:     version,
		started:     time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Get("/", s.handleRoot)
	r.Get("/test", s.handleDiagnostics)

	r.Route("/api", func(r chi.Router) {
		r.Post("/tasks", s.handleCreateTask)
		r.Get("/tasks", s.handleListTasks)
		r.Post("/mood", s.handleLogMood)
		r.Get("/mood", s.handleListMood)
	})

	// The dashboard frontend is served from another origin.
	s.handler = cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(r)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"app":    "BrainDash API",
		"status": "ok",
	})
}

func (s *Server) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"backend":     "running",
		"version":     s.version,
		"uptime":      time.Since(s.started).Seconds(),
		"database":    "ok",
		"db_path":     s.db.Path,
		"collections": []string{},
	}

	if err := s.db.Ping(); err != nil {
		resp["database"] = "unavailable"
	} else {
		if names, err := s.db.Collections(); err == nil {
			resp["collections"] = names
		}
		if v, err := s.db.SchemaVersion(); err == nil {
			resp["schema_version"] = v
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
