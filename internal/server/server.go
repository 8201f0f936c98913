// Package server exposes the train renderer over HTTP.
//
// Routes:
//
//	GET /health                 liveness probe
//	GET /api/train.{format}     rendered train (svg, png, pdf, json)
//	GET /api/layout             laid-out train as JSON
//	GET /api/stats              request and cache counters
//
// Both API routes take loads=1.3,0.2,... and optional width, height and
// scale query parameters.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/matzehuels/capview/pkg/buildinfo"
	"github.com/matzehuels/capview/pkg/config"
	"github.com/matzehuels/capview/pkg/observability"
	"github.com/matzehuels/capview/pkg/pipeline"
)

const shutdownTimeout = 10 * time.Second

// Server serves rendered trains.
type Server struct {
	runner *pipeline.Runner
	cfg    *config.Config
	logger *log.Logger
	router chi.Router
	stats  *observability.Counters
}

// New creates a server that renders through runner with the defaults in
// cfg.
func New(runner *pipeline.Runner, cfg *config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, cfg: cfg, logger: logger, stats: &observability.Counters{}}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Server", buildinfo.ServerHeader()))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader, "X-Cache"},
		MaxAge:         300,
	}))

	r.Get("/health", s.health)
	r.Get("/api/train.{format}", s.train)
	r.Get("/api/layout", s.layout)
	r.Get("/api/stats", s.statsHandler)
	return r
}

// ListenAndServe serves on the configured address until ctx is canceled,
// then shuts down gracefully. While it runs, cache events also feed the
// server's counters.
func (s *Server) ListenAndServe(ctx context.Context) error {
	prev := observability.Cache()
	observability.SetCacheHooks(observability.TeeCache(prev, s.stats))
	defer observability.SetCacheHooks(prev)

	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
