package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

func (r *Registry) initQueryMetrics() {
	r.PathQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netpath_queries_total",
			Help: "Path queries by query type and outcome status",
		},
		[]string{"query_type", "status"},
	)

	r.PathQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netpath_query_duration_seconds",
			Help:    "Path query latency by query type",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query_type"},
	)

	r.PathHops = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netpath_query_hops",
			Help:    "Device hop count of successful path queries",
			Buckets: []float64{1, 2, 4, 6, 8, 12, 16, 24, 32},
		},
		[]string{"query_type"},
	)

	r.AlternativesFound = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "netpath_query_alternatives",
		Help:    "Alternative routes returned per optimal-route query",
		Buckets: []float64{0, 1, 2, 3, 4, 5},
	})

	r.EnumerationsTruncatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "netpath_enumerations_truncated_total",
		Help: "Path enumerations stopped by the configured limit",
	})

	r.registry.MustRegister(
		r.PathQueriesTotal,
		r.PathQueryDuration,
		r.PathHops,
		r.AlternativesFound,
		r.EnumerationsTruncatedTotal,
	)
}
