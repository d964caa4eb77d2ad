package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector handles Prometheus metrics collection and reporting
type Collector struct {
	registry *prometheus.Registry

	recipeSaves     *prometheus.CounterVec
	recipeImports   *prometheus.CounterVec
	computeDuration prometheus.Histogram
	storeErrors     prometheus.Counter
	recipesTracked  prometheus.Gauge
}

// NewCollector creates a new metrics collector
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	recipeSaves := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_saves_total",
			Help: "Recipe save operations by result",
		},
		[]string{"result"},
	)

	recipeImports := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_imports_total",
			Help: "Recipe batch imports by mode and result",
		},
		[]string{"mode", "result"},
	)

	computeDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "costing_compute_duration_seconds",
			Help:    "Time spent deriving cost metrics",
			Buckets: prometheus.ExponentialBuckets(0.000001, 10, 8),
		},
	)

	storeErrors := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Storage operations that reported failure",
		},
	)

	recipesTracked := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipes_tracked",
			Help: "Number of recipes currently in the store",
		},
	)

	for _, metric := range []prometheus.Collector{
		recipeSaves, recipeImports, computeDuration, storeErrors, recipesTracked,
	} {
		registry.MustRegister(metric)
	}

	return &Collector{
		registry:        registry,
		recipeSaves:     recipeSaves,
		recipeImports:   recipeImports,
		computeDuration: computeDuration,
		storeErrors:     storeErrors,
		recipesTracked:  recipesTracked,
	}
}

// Handler returns the scrape handler for the metrics server.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecipeSaved records one save attempt.
func (c *Collector) RecipeSaved(ok bool) {
	c.recipeSaves.WithLabelValues(result(ok)).Inc()
}

// ImportApplied records one batch import attempt.
func (c *Collector) ImportApplied(mode string, ok bool) {
	c.recipeImports.WithLabelValues(mode, result(ok)).Inc()
}

// ObserveCompute records the duration of one metrics derivation.
func (c *Collector) ObserveCompute(d time.Duration) {
	c.computeDuration.Observe(d.Seconds())
}

// StoreError records a failed storage operation.
func (c *Collector) StoreError() {
	c.storeErrors.Inc()
}

// SetRecipeCount updates the tracked-recipe gauge.
func (c *Collector) SetRecipeCount(n int) {
	c.recipesTracked.Set(float64(n))
}

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
