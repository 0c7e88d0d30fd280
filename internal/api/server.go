// Package api exposes the session collection and the analysis pipeline over
// HTTP. All responses are JSON; the session shape on the wire is the domain
// shape verbatim.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/analyzer"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/domain"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/logging"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/store"
)

// Server holds the HTTP handlers and their collaborators.
type Server struct {
	store    *store.SessionStore
	analyzer *analyzer.Service
	agent    domain.AgentProfile
	log      *logging.Logger
}

// NewServer wires the API around a session store and an analyzer.
func NewServer(st *store.SessionStore, an *analyzer.Service, agent domain.AgentProfile, log *logging.Logger) *Server {
	return &Server{
		store:    st,
		analyzer: an,
		agent:    agent,
		log:      log.Sub("api"),
	}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLog)

	r.Route("/api", func(api chi.Router) {
		api.Get("/sessions", s.handleList)
		api.Post("/sessions", s.handleUpload)
		api.Get("/sessions/{id}", s.handleGet)
		api.Post("/sessions/{id}/reanalyze", s.handleReanalyze)
		api.Get("/sessions/{id}/highlights", s.handleHighlights)
	})

	return r
}

// requestLog emits one structured line per request.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Msg("request")
	})
}
