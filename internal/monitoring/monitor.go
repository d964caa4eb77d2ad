// Package monitoring collects operational metrics for the costing service:
// an in-process monitor backing the JSON metrics endpoint, and Prometheus
// collectors for the scrape endpoint.
package monitoring

import (
	"sync"
	"time"
)

// Monitor collects and provides metrics for the costing service
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// IncrementMetric bumps an integer counter metric by one.
func (m *Monitor) IncrementMetric(name string) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	count, _ := m.metrics[name].(int)
	m.metrics[name] = count + 1
}

// GetMetric returns a specific metric value
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Create a copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	// Add system metrics
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}

// RecordStoreMutation records a store write with its outcome and refreshes
// the last-mutation timestamp shown on the dashboard.
func (m *Monitor) RecordStoreMutation(op string, ok bool) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	key := "store_" + op
	if !ok {
		key += "_failed"
	}
	count, _ := m.metrics[key].(int)
	m.metrics[key] = count + 1
	m.metrics["store_last_mutation"] = time.Now().Format(time.RFC3339)
}
