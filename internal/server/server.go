package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/codeassist/internal/gateway"
)

// Config holds server configuration.
type Config struct {
	Port int
	// CORSOrigins lists allowed origins; "*" allows any origin.
	CORSOrigins []string
	// RequestTimeout is the upstream call bound; the write timeout is
	// derived from it so handlers can always report a failure.
	RequestTimeout time.Duration
}

// Server is the HTTP front of the gateway.
type Server struct {
	cfg        Config
	gateway    *gateway.Gateway
	logger     zerolog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server exposing g.
func New(cfg Config, g *gateway.Gateway, logger zerolog.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		gateway: g,
		logger:  logger,
	}

	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	origins := s.cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	gateway.RegisterRoutes(r, s.gateway)

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)

	var writeTimeout time.Duration
	if s.cfg.RequestTimeout > 0 {
		writeTimeout = s.cfg.RequestTimeout + 30*time.Second
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info().Str("addr", addr).Msg("codeassist server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
