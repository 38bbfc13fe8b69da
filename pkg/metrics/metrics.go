package metrics

import (
	"time"
)

// RecordPathQuery records one path query with its outcome and latency.
func (r *Registry) RecordPathQuery(queryType, status string, duration time.Duration) {
	r.PathQueriesTotal.WithLabelValues(queryType, status).Inc()
	r.PathQueryDuration.WithLabelValues(queryType).Observe(duration.Seconds())
}

// RecordPathHops records the hop count of a successful query.
func (r *Registry) RecordPathHops(queryType string, hops int) {
	r.PathHops.WithLabelValues(queryType).Observe(float64(hops))
}

// RecordAlternatives records how many alternative routes a query
// produced.
func (r *Registry) RecordAlternatives(n int) {
	r.AlternativesFound.Observe(float64(n))
}

// RecordEnumerationTruncated counts one enumeration stopped by its
// limit.
func (r *Registry) RecordEnumerationTruncated() {
	r.EnumerationsTruncatedTotal.Inc()
}

// UpdateTopology refreshes the snapshot gauges after a rebuild.
func (r *Registry) UpdateTopology(devices, activeDevices, hosts, links, graphNodes, graphArcs int) {
	r.TopologyDevices.Set(float64(devices))
	r.TopologyActiveDevices.Set(float64(activeDevices))
	r.TopologyHosts.Set(float64(hosts))
	r.TopologyLinks.Set(float64(links))
	r.GraphNodes.Set(float64(graphNodes))
	r.GraphArcs.Set(float64(graphArcs))
}

// AddDroppedLinks counts links rejected during graph construction.
func (r *Registry) AddDroppedLinks(n int) {
	if n > 0 {
		r.DroppedLinksTotal.Add(float64(n))
	}
}
