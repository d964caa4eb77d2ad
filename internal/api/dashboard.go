package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"foodcost/internal/analytics"
	"foodcost/internal/costing"
	"foodcost/internal/format"
	"foodcost/internal/store"
)

// Dashboard handlers. All of these read the store snapshot at request time
// and recompute in full; nothing here writes back.

func (s *Server) DashboardSummary(c *gin.Context) {
	recipes, err := s.store.ListRecipes()
	if err != nil {
		s.metrics.StoreError()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summary := analytics.Summarize(recipes)
	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"display": gin.H{
			"averageProfitMargin": format.Percent(summary.AverageProfitMargin),
			"averageFoodCost":     format.Percent(summary.AverageFoodCost),
			"averageSellingPrice": format.Currency(summary.AverageSellingPrice),
		},
		"hasData": summary.TotalRecipes > 0,
	})
}

func (s *Server) TopRecipes(c *gin.Context) {
	recipes, err := s.store.ListRecipes()
	if err != nil {
		s.metrics.StoreError()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analytics.TopRecipes(recipes, intQuery(c, "n", analytics.DefaultTopCount)))
}

func (s *Server) AttentionRecipes(c *gin.Context) {
	recipes, err := s.store.ListRecipes()
	if err != nil {
		s.metrics.StoreError()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analytics.AttentionRecipes(recipes, intQuery(c, "n", analytics.DefaultTopCount)))
}

func (s *Server) Forecast(c *gin.Context) {
	months := intQuery(c, "months", analytics.DefaultForecastMonths)
	series := analytics.ForecastSeries(s.cfg.Forecast.BaseRevenue, months, time.Now())
	c.JSON(http.StatusOK, series)
}

func (s *Server) Trend(c *gin.Context) {
	days := intQuery(c, "days", analytics.DefaultTrendDays)
	series := analytics.ProfitabilityTrend(days, time.Now(), nil)
	c.JSON(http.StatusOK, series)
}

// ProjectionRequest carries the operator's what-if inputs for the revenue
// projection. Zero values fall back to the configured defaults.
type ProjectionRequest struct {
	DailySales     float64 `json:"dailySales"`
	SeasonalFactor float64 `json:"seasonalFactor"`
}

func (s *Server) Projection(c *gin.Context) {
	var req ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DailySales <= 0 {
		req.DailySales = s.cfg.Forecast.DailySales
	}
	if req.SeasonalFactor <= 0 {
		req.SeasonalFactor = s.cfg.Forecast.SeasonalFactor
	}

	recipes, err := s.store.ListRecipes()
	if err != nil {
		s.metrics.StoreError()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	avgPrice := analytics.Summarize(recipes).AverageSellingPrice
	projection := analytics.ProjectRevenue(req.DailySales, req.SeasonalFactor, avgPrice)
	c.JSON(http.StatusOK, gin.H{
		"projection": projection,
		"display": gin.H{
			"daily":   format.Currency(projection.Daily),
			"weekly":  format.Currency(projection.Weekly),
			"monthly": format.Currency(projection.Month),
			"annual":  format.Currency(projection.Annual),
		},
	})
}

// PricingRequest asks for a recommended price for one saved recipe at a
// target profit margin.
type PricingRequest struct {
	Recipe       string  `json:"recipe"`
	TargetMargin float64 `json:"targetMargin"`
}

func (s *Server) PricingSimulator(c *gin.Context) {
	var req PricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := s.store.LoadRecipe(req.Recipe)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if err != nil {
		s.metrics.StoreError()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	m, err := costing.ComputeRecipe(recipe)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := analytics.RecommendPrice(m.CostPerServing, req.TargetMargin, s.cfg.Pricing.Tiers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.pricingRefresh.Trigger(func() { s.hub.Broadcast("pricing") })
	c.JSON(http.StatusOK, gin.H{
		"recommendation": rec,
		"display":        gin.H{"recommendedPrice": format.Currency(rec.RecommendedPrice)},
	})
}

// CompetitiveRequest carries a competitor price point and an optional market
// segment tag that is echoed back for the panel.
type CompetitiveRequest struct {
	CompetitorPrice float64 `json:"competitorPrice"`
	MarketSegment   string  `json:"marketSegment"`
}

func (s *Server) CompetitiveAnalysis(c *gin.Context) {
	var req CompetitiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipes, err := s.store.ListRecipes()
	if err != nil {
		s.metrics.StoreError()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	avgPrice := analytics.Summarize(recipes).AverageSellingPrice
	cmp, err := analytics.ComparePricing(avgPrice, req.CompetitorPrice)
	if errors.Is(err, analytics.ErrNoCompetitorPrice) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Enter competitor price to see analysis"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.competitiveRefresh.Trigger(func() { s.hub.Broadcast("competitive") })
	c.JSON(http.StatusOK, gin.H{
		"comparison":    cmp,
		"marketSegment": req.MarketSegment,
		"display": gin.H{
			"averagePrice":    format.Currency(cmp.AveragePrice),
			"competitorPrice": format.Currency(cmp.CompetitorPrice),
			"percentDiff":     format.Percent(cmp.PercentDiff),
		},
	})
}

// Fixed heuristic panels

func (s *Server) Recommendations(c *gin.Context) {
	c.JSON(http.StatusOK, analytics.MarketingRecommendations())
}

func (s *Server) Optimizations(c *gin.Context) {
	c.JSON(http.StatusOK, analytics.CostOptimizations())
}

func (s *Server) Alerts(c *gin.Context) {
	c.JSON(http.StatusOK, analytics.SmartAlerts())
}

// ExportDashboard wraps the full recipe mapping with an export timestamp.
func (s *Server) ExportDashboard(c *gin.Context) {
	recipes, err := s.store.ExportRecipes()
	if err != nil {
		s.metrics.StoreError()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"recipes":   recipes,
	})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
