// Package api exposes the annotator over HTTP. The rule core stays pure;
// this is a thin adapter.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"edarec/internal"
	"edarec/internal/annotator"
)

// Server wires the annotation endpoints onto a chi router
type Server struct {
	router    *chi.Mux
	annotator *annotator.Annotator
	logger    *internal.Logger
}

// NewServer creates the HTTP server around an annotator.
func NewServer(an *annotator.Annotator, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}

	s := &Server{
		router:    chi.NewRouter(),
		annotator: an,
		logger:    logger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/annotate", s.handleAnnotate)
		r.Post("/report", s.handleReport)
	})

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts serving on the given port.
func (s *Server) ListenAndServe(port string) error {
	s.logger.Info("annotation API listening on :%s", port)
	return http.ListenAndServe(":"+port, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
