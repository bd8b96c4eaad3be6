// Package server exposes the viewer HTTP API and static assets.
package server

import (
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/molviewer/molviewd/internal/config"
	"github.com/molviewer/molviewd/internal/pdb"
)

// Server represents the HTTP server
type Server struct {
	logger *zap.Logger
	cfg    *config.Config
	pdbSvc pdb.Service
}

// NewServer creates a new HTTP server
func NewServer(logger *zap.Logger, cfg *config.Config, pdbSvc pdb.Service) *Server {
	return &Server{
		logger: logger,
		cfg:    cfg,
		pdbSvc: pdbSvc,
	}
}

// Router creates a new HTTP router
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(ginzap.Ginzap(s.logger, "2006-01-02T15:04:05Z07:00", true))
	router.Use(ginzap.RecoveryWithZap(s.logger, true))
	router.Use(otelgin.Middleware("molviewd"))
	router.Use(cors.Default())
	router.Use(requestID())

	// Add metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Add API routes
	api := router.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.POST("/read_pdb", s.handleReadPDB)
	}

	// Serve the viewer page and its assets; API routes take precedence.
	router.GET("/", s.handleIndex)
	router.NoRoute(s.handleStatic)

	return router
}

// Start starts the HTTP server on addr
func (s *Server) Start(addr string) error {
	return s.Router().Run(addr)
}
