// Package api serves combikit's computations over HTTP.
//
// Every endpoint accepts the JSON form of a pipeline request and answers
// with the pipeline result:
//
//	POST /v1/permutations  {"n": 4, "limit": 10, "together": [[0, 1]]}
//	POST /v1/subsets       {"size": 5}
//	POST /v1/partitions    {"groups": [[0, 1], [2, 3]], "max_value": 4}
//	POST /v1/islands       {"items": [...], "links": [{"a": 0, "b": 1}], "consolidate": 3}
//	POST /v1/chains        {"segments": [[0, 1], [1, 2]]}
//	GET  /healthz
//
// Errors are returned as {"code": "...", "message": "..."} with a status
// derived from the code.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/combikit/pkg/buildinfo"
	"github.com/matzehuels/combikit/pkg/pipeline"
)

// maxBodyBytes bounds request documents.
const maxBodyBytes = 4 << 20

// Server routes HTTP requests to a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server backed by runner. A nil logger uses log.Default().
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/permutations", handle(s, s.runner.Permutations))
		r.Post("/subsets", handle(s, s.runner.Subsets))
		r.Post("/partitions", handle(s, s.runner.Partitions))
		r.Post("/islands", handle(s, s.runner.Islands))
		r.Post("/chains", handle(s, s.runner.Chains))
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, notFound(r.URL.Path))
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}
