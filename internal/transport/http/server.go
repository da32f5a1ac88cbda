package http

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/countryflag/countryflag/internal/service"
)

// Server represents the HTTP server
type Server struct {
	handler *Handler
	server  *http.Server
	port    string
	logger  *zap.Logger
}

// NewServer creates a new HTTP server exposing the lookup facade as a small
// JSON API, plus health and prometheus metrics endpoints.
func NewServer(cf service.CountryFlag, port string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	handler := NewHandler(cf, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/flags", handler.ConvertFlags)
	mux.HandleFunc("/api/reverse", handler.ReverseLookup)
	mux.HandleFunc("/api/regions/", handler.RegionFlags)
	mux.HandleFunc("/api/countries", handler.ListCountries)
	mux.HandleFunc("/api/validate", handler.Validate)
	mux.HandleFunc("/health", handler.Health)
	mux.Handle("/metrics", promhttp.Handler())

	var finalHandler http.Handler = mux
	finalHandler = NewLoggingMiddleware(logger).Middleware(finalHandler)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      finalHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		handler: handler,
		server:  server,
		port:    port,
		logger:  logger,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("port", s.port))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.server.Shutdown(ctx)
}

// Port returns the server port
func (s *Server) Port() string {
	return s.port
}

// Handler returns the server handler (useful for testing)
func (s *Server) Handler() *Handler {
	return s.handler
}
