package server

import (
	"context"
	"net/http"
	"time"

	"github.com/hongminglow/user-service/internal/auth"
	"github.com/hongminglow/user-service/internal/config"
	"github.com/hongminglow/user-service/internal/http/handlers"
	"github.com/hongminglow/user-service/internal/middleware"
	"github.com/hongminglow/user-service/internal/service"
	"github.com/hongminglow/user-service/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.UserStore) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           Handler(cfg, store),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Handler builds the full middleware and route tree.
func Handler(cfg config.Config, store storage.UserStore) http.Handler {
	api := http.NewServeMux()
	users := handlers.NewUserHandler(service.NewUserService(store))
	users.Register(api)

	var apiHandler http.Handler = api
	if cfg.AuthEnabled() {
		tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, time.Hour)
		apiHandler = middleware.Bearer(tokens, api)
	}

	mux := http.NewServeMux()
	health := handlers.NewHealthHandler(time.Now(), store)
	health.Register(mux)
	mux.Handle("/api/", apiHandler)

	return middleware.CORS(cfg.CORSOrigins, middleware.Logging(mux))
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
