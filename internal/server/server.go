// Package server wires repositories, services, handlers, and middleware into
// the API router. Keeping the wiring out of main makes the full HTTP surface
// testable against in-memory repositories.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/statusfeed/statusfeed-go/internal/handler"
	"github.com/statusfeed/statusfeed-go/internal/middleware"
	"github.com/statusfeed/statusfeed-go/internal/repository"
	"github.com/statusfeed/statusfeed-go/internal/service"
)

// Config holds everything the router needs.
type Config struct {
	JWTSecret string
	JWTExpiry time.Duration
	Users     repository.UserRepository
	Statuses  repository.StatusRepository
}

// New builds the API router. Routes keep their trailing slashes; they are
// part of the public URL scheme.
func New(cfg Config) *chi.Mux {
	authService := service.NewAuthService(cfg.Users, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService)

	statusService := service.NewStatusService(cfg.Statuses, cfg.Users)
	statusHandler := handler.NewStatusHandler(statusService)

	authenticate := middleware.Authenticate(cfg.JWTSecret, cfg.Users)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/register/", authHandler.HandleRegister)
			r.Post("/login/", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.RequireUser)
			r.Get("/me/", authHandler.HandleMe)
			r.Post("/logout/", authHandler.HandleLogout)
		})
	})

	r.Route("/api/status", func(r chi.Router) {
		r.Use(authenticate)
		r.Use(middleware.RequireUser)
		r.Post("/", statusHandler.HandleCreate)
		r.Get("/", statusHandler.HandleList)
		r.Get("/{status_id}/", statusHandler.HandleGet)
		r.Put("/{status_id}/", statusHandler.HandleUpdate)
		r.Delete("/{status_id}/", statusHandler.HandleDelete)
	})

	return r
}
