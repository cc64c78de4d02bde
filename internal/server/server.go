package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hisarandre/P5-yoga-app/internal/config"
	"github.com/hisarandre/P5-yoga-app/internal/repository"
)

type Server struct {
	cfg    config.Config
	store  repository.Store
	logger *slog.Logger
}

func NewServer(cfg config.Config, store repository.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, store: store, logger: logger}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(s.loggingMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Get("/session", s.handleListSessions)
			r.Get("/session/{id}", s.handleGetSession)
			r.With(s.requireAdmin).Post("/session", s.handleCreateSession)
			r.With(s.requireAdmin).Put("/session/{id}", s.handleUpdateSession)
			r.With(s.requireAdmin).Delete("/session/{id}", s.handleDeleteSession)
			r.Post("/session/{id}/participate/{userId}", s.handleParticipate)
			r.Delete("/session/{id}/participate/{userId}", s.handleUnparticipate)

			r.Get("/teacher", s.handleListTeachers)
			r.Get("/teacher/{id}", s.handleGetTeacher)

			r.Get("/user/{id}", s.handleGetUser)
			r.Delete("/user/{id}", s.handleDeleteUser)
		})
	})

	return r
}
