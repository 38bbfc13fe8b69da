package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every metric exported by the path engine.
type Registry struct {
	// Topology metrics, refreshed per snapshot.
	TopologyDevices       prometheus.Gauge
	TopologyActiveDevices prometheus.Gauge
	TopologyHosts         prometheus.Gauge
	TopologyLinks         prometheus.Gauge
	GraphNodes            prometheus.Gauge
	GraphArcs             prometheus.Gauge
	DroppedLinksTotal     prometheus.Counter

	// Query metrics, recorded per path query.
	PathQueriesTotal           *prometheus.CounterVec
	PathQueryDuration          *prometheus.HistogramVec
	PathHops                   *prometheus.HistogramVec
	AlternativesFound          prometheus.Histogram
	EnumerationsTruncatedTotal prometheus.Counter

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with all metrics initialized and
// registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initTopologyMetrics()
	r.initQueryMetrics()
	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry for
// exposition.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
