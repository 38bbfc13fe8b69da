package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

func (r *Registry) initTopologyMetrics() {
	r.TopologyDevices = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "netpath_topology_devices",
		Help: "Devices in the current topology snapshot",
	})

	r.TopologyActiveDevices = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "netpath_topology_active_devices",
		Help: "Devices reported available in the current snapshot",
	})

	r.TopologyHosts = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "netpath_topology_hosts",
		Help: "Hosts in the current topology snapshot",
	})

	r.TopologyLinks = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "netpath_topology_links",
		Help: "Link records in the current topology snapshot",
	})

	r.GraphNodes = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "netpath_graph_nodes",
		Help: "Nodes in the built adjacency graph",
	})

	r.GraphArcs = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "netpath_graph_arcs",
		Help: "Directed arcs in the built adjacency graph",
	})

	r.DroppedLinksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "netpath_dropped_links_total",
		Help: "Links dropped at build time for referencing unknown devices",
	})

	r.registry.MustRegister(
		r.TopologyDevices,
		r.TopologyActiveDevices,
		r.TopologyHosts,
		r.TopologyLinks,
		r.GraphNodes,
		r.GraphArcs,
		r.DroppedLinksTotal,
	)
}
