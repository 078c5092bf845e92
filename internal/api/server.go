package api

import (
	"log/slog"
	"net/http"

	"coursegen/internal/config"
	"coursegen/internal/generate"
	"coursegen/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for coursegen.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	client       *generate.Client
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, client *generate.Client, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		client:       client,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(logRequests(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(requireAPIKey(s.cfg.APIKey, s.log))

		r.Post("/api/syllabi", s.handleUpload)
		r.Post("/api/syllabi/batch", s.handleBatchUpload)
		r.Get("/api/syllabi/{jobID}/status", s.handleJobStatus)

		r.Get("/api/courses", s.handleCourses)
		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
