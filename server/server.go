package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/kbukum/statuscode/logger"
	"github.com/kbukum/statuscode/observability"
	"github.com/kbukum/statuscode/server/endpoint"
	"github.com/kbukum/statuscode/server/middleware"
)

// Server is the status lookup HTTP server, backed by Gin and served over
// HTTP/1.1 and cleartext HTTP/2.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     Config
	log        *logger.Logger
	registry   *logger.ComponentRegistry
	listener   net.Listener
	checkers   []observability.HealthChecker
}

// New creates a new Server. No middleware or routes are registered yet; see
// ApplyDefaults.
func New(cfg Config, log *logger.Logger) *Server {
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		engine:   gin.New(),
		config:   cfg,
		log:      log.WithComponent("server"),
		registry: logger.NewComponentRegistry(),
	}

	h2s := &http2.Server{
		MaxConcurrentStreams: 250,
		IdleTimeout:          120 * time.Second,
	}
	handler := middleware.Chain(middleware.RequestLogger(s.log))(s.engine)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h2c.NewHandler(handler, h2s),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// GinEngine returns the underlying Gin engine for route registration.
func (s *Server) GinEngine() *gin.Engine {
	return s.engine
}

// Handler returns the root handler, request logging included.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Registry returns the startup registry the server records its routes in.
func (s *Server) Registry() *logger.ComponentRegistry {
	return s.registry
}

// AddHealthChecker adds a component to the /health report.
func (s *Server) AddHealthChecker(c observability.HealthChecker) {
	s.checkers = append(s.checkers, c)
}

// ApplyMiddleware applies the standard Gin middleware stack: recovery,
// request ID, tracing and error rendering. metrics may be nil.
func (s *Server) ApplyMiddleware(metrics *observability.Metrics) {
	s.engine.Use(
		middleware.Recovery(s.log),
		middleware.RequestID(),
		middleware.Tracing(metrics),
		middleware.Errors(),
	)
}

// RegisterDefaultEndpoints registers /health, /version and the /v1 status
// lookup routes.
func (s *Server) RegisterDefaultEndpoints(serviceName string) {
	s.engine.GET("/health", endpoint.Health(serviceName, func() []observability.HealthChecker { return s.checkers }))
	s.engine.GET("/version", endpoint.Version())
	registerLookupRoutes(s.engine.Group("/v1"), s.config.MaxSpecLength)
}

// ApplyDefaults applies the standard middleware stack and registers the
// default endpoints.
func (s *Server) ApplyDefaults(serviceName string, metrics *observability.Metrics) {
	s.ApplyMiddleware(metrics)
	s.RegisterDefaultEndpoints(serviceName)
}

// Start binds the port and begins serving. It returns once the listener is
// bound so the caller knows the port is ready; serving continues in a goroutine.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("server failed to bind %s: %w", s.httpServer.Addr, err)
	}
	s.listener = listener

	for _, r := range s.engine.Routes() {
		s.registry.RegisterRoute(r.Method, r.Path, r.Handler)
	}
	s.registry.RegisterComponent("http", "server", "active", s.Addr())

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("Server error", logger.ErrorFields("serve", err))
		}
	}()

	s.log.Info("HTTP server started", logger.Fields("addr", s.Addr()))
	return nil
}

// Stop gracefully shuts down the server within the configured shutdown
// timeout.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.log.Error("Server shutdown error", logger.ErrorFields("shutdown", err))
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("HTTP server shut down successfully")
	return nil
}

// Addr returns the bound address once started, the configured one before.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}
