// Package api exposes the recipe editor and the analytics dashboard over
// HTTP. The editor writes to the recipe store; the dashboard only reads it.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"foodcost/internal/autosave"
	"foodcost/internal/config"
	"foodcost/internal/editor"
	"foodcost/internal/monitoring"
	"foodcost/internal/store"
)

// Server represents the main API handler for the costing service
type Server struct {
	Router  *gin.Engine
	store   store.Store
	session *editor.Session
	hub     *Hub
	monitor *monitoring.Monitor
	metrics *monitoring.Collector
	cfg     *config.Config

	// Simulator inputs arrive per keystroke; these coalesce the resulting
	// dashboard refresh broadcasts into one event per quiet period.
	pricingRefresh     *autosave.Debouncer
	competitiveRefresh *autosave.Debouncer
}

// NewServer creates a new API server instance
func NewServer(cfg *config.Config, st store.Store) *Server {
	router := gin.Default()

	s := &Server{
		Router:  router,
		store:   st,
		session: editor.NewSession(st, time.Duration(cfg.Autosave.DraftDelayMS)*time.Millisecond),
		hub:     NewHub(),
		monitor: monitoring.NewMonitor(),
		metrics: monitoring.NewCollector(),
		cfg:     cfg,

		pricingRefresh:     autosave.NewDebouncer(time.Duration(cfg.Autosave.PricingDelayMS) * time.Millisecond),
		competitiveRefresh: autosave.NewDebouncer(time.Duration(cfg.Autosave.CompetitiveDelayMS) * time.Millisecond),
	}

	s.setupRoutes()
	return s
}

// Metrics returns the Prometheus collector for the metrics server.
func (s *Server) Metrics() *monitoring.Collector {
	return s.metrics
}

// Close stops the live-update hub, the editor session, and the pending
// refresh events.
func (s *Server) Close() {
	s.session.Close()
	s.pricingRefresh.Stop()
	s.competitiveRefresh.Stop()
	s.hub.Close()
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	// Health check
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "foodcost API is running"})
	})

	// Live dashboard updates
	s.Router.GET("/ws", s.handleWebSocket)

	v1 := s.Router.Group("/api/v1")
	if s.cfg.Auth.Enabled {
		v1.Use(RequireAuth(s.cfg.Auth.Secret))
	}
	{
		// Recipe management
		v1.POST("/recipes", s.SaveRecipe)
		v1.GET("/recipes", s.ListRecipes)
		v1.GET("/recipes/:name", s.GetRecipe)
		v1.DELETE("/recipes/:name", s.DeleteRecipe)
		v1.POST("/recipes/import", s.ImportRecipes)
		v1.GET("/recipes/export", s.ExportRecipes)
		v1.DELETE("/recipes", s.ClearAll)

		// Editor support
		v1.GET("/draft", s.GetDraft)
		v1.PUT("/draft", s.PutDraft)
		v1.POST("/costing/preview", s.PreviewCosting)
		v1.GET("/editor/suggestions", s.EditorSuggestions)

		// Dashboard panels
		v1.GET("/dashboard/summary", s.DashboardSummary)
		v1.GET("/dashboard/top", s.TopRecipes)
		v1.GET("/dashboard/attention", s.AttentionRecipes)
		v1.GET("/dashboard/forecast", s.Forecast)
		v1.GET("/dashboard/trend", s.Trend)
		v1.POST("/dashboard/projection", s.Projection)
		v1.POST("/dashboard/pricing", s.PricingSimulator)
		v1.POST("/dashboard/competitive", s.CompetitiveAnalysis)
		v1.GET("/dashboard/recommendations", s.Recommendations)
		v1.GET("/dashboard/optimizations", s.Optimizations)
		v1.GET("/dashboard/alerts", s.Alerts)
		v1.GET("/dashboard/export", s.ExportDashboard)

		// Operational metrics (JSON; Prometheus scrape runs on its own port)
		v1.GET("/metrics", s.JSONMetrics)
	}
}

// JSONMetrics returns current in-process metrics
func (s *Server) JSONMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}
