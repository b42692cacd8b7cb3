package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"github.com/alkime/postcraft/internal/ai"
	"github.com/alkime/postcraft/internal/config"
	"github.com/alkime/postcraft/internal/store"
)

// Server represents the HTTP server
type Server struct {
	config    *config.Config
	logger    *slog.Logger
	router    *gin.Engine
	generator ai.Generator
	working   *store.Working
	saved     *store.Saved
}

// New creates a new Server instance
func New(cfg *config.Config, logger *slog.Logger, generator ai.Generator, working *store.Working, saved *store.Saved) *Server {
	// Set Gin mode based on environment
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		config:    cfg,
		logger:    logger,
		router:    router,
		generator: generator,
		working:   working,
		saved:     saved,
	}

	setupSecurityMiddleware(router, cfg, logger)
	server.setupRoutes()

	return server
}

// Run starts the HTTP server
func (s *Server) Run() error {
	s.logger.Info("Server listening", "port", s.config.Port)
	return s.router.Run(":" + s.config.Port)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api/v1")
	{
		api.POST("/posts/generate", s.handleGenerate)
		api.GET("/posts", s.handleListPosts)
		api.POST("/posts/:id/adjust", s.handleAdjust)
		api.POST("/posts/:id/image", s.handleImage)
		api.POST("/posts/:id/structure", s.handleStructure)

		api.GET("/saved", s.handleListSaved)
		api.POST("/saved", s.handleSave)
		api.DELETE("/saved/:id", s.handleRemoveSaved)

		api.GET("/export/csv", s.handleExportCSV)
		api.GET("/export/document", s.handleExportDocument)
	}

	// Serve the web UI as fallback; NoRoute keeps explicit routes first.
	s.router.NoRoute(static.Serve("/", static.LocalFile(s.config.WebDir, true)))
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "postcraft",
	})
}
