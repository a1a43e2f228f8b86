package http

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server represents the frontend HTTP server
type Server struct {
	router  *gin.Engine
	server  *http.Server
	backend ChequeBackend
	metrics Metrics
	logger  *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Addr    string
	Backend ChequeBackend
	Metrics Metrics
	// Gatherer backs /metrics; nil uses the default Prometheus registry
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}

	router := gin.New()
	// Client IPs come from the socket peer, never from forwarding headers
	if err := router.SetTrustedProxies(nil); err != nil {
		logger.Warn("failed to reset trusted proxies", zap.Error(err))
	}
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))
	router.Use(requestMetrics(metrics))
	router.SetHTMLTemplate(template.Must(template.New("").ParseFS(templateFS, "templates/*.html")))

	s := &Server{
		router:  router,
		backend: cfg.Backend,
		metrics: metrics,
		logger:  logger,
	}

	s.setupRoutes(cfg.Gatherer)

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// setupRoutes configures the frontend routes
func (s *Server) setupRoutes(gatherer prometheus.Gatherer) {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// Metrics
	if gatherer == nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// Cheque pages
	s.router.GET("/", s.handleIndex)
	s.router.POST("/add", s.handleAdd)
	s.router.POST("/delete", s.handleDelete)
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
