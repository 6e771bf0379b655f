// Package web serves the now-playing HTTP API.
package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Addr                      string
	Source                    PlaybackSource
	Logger                    *zap.SugaredLogger
	CacheMaxAge               int
	CacheStaleWhileRevalidate int
	RequestsPerSecond         float64
}

// Server is the HTTP server for the service.
type Server struct {
	router   chi.Router
	server   *http.Server
	handlers *Handlers
	logger   *zap.SugaredLogger
}

// NewServer creates a new server with routes and middleware configured.
func NewServer(cfg ServerConfig) *Server {
	handlers := NewHandlers(cfg.Source, cfg.Logger, cfg.CacheMaxAge, cfg.CacheStaleWhileRevalidate)

	router := chi.NewRouter()

	s := &Server{
		router:   router,
		handlers: handlers,
		logger:   cfg.Logger,
	}

	s.setupMiddleware(cfg.RequestsPerSecond)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware for the router.
func (s *Server) setupMiddleware(requestsPerSecond float64) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	burst := int(requestsPerSecond)
	if burst < 1 {
		burst = 1
	}
	s.router.Use(rateLimit(rate.NewLimiter(rate.Limit(requestsPerSecond), burst)))
}

// setupRoutes configures routes for the service.
func (s *Server) setupRoutes() {
	s.router.Get("/api/now-playing", s.handlers.NowPlaying)
	s.router.Get("/healthz", s.handlers.Healthz)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Infow("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Run starts the server and handles graceful shutdown on interrupt signals.
func (s *Server) Run() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		s.logger.Infow("shutting down server", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.Infow("server stopped")
	return nil
}

// requestLogger logs one line per request with status and timing.
func requestLogger(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Infow("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
