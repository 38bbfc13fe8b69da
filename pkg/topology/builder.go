package topology

import (
	"github.com/dd0wney/cluso-netpath/pkg/logging"
	"github.com/dd0wney/cluso-netpath/pkg/metrics"
)

// Every discovered link carries unit cost. The discovery layer does
// not report bandwidth or latency, so hop count is the metric.
const linkWeight = 1

// BuildGraph converts discovered devices and links into the adjacency
// structure the path engine queries.
//
// Every known device becomes a node, so isolated devices still appear
// with an empty adjacency row. A link contributes a single directed
// arc src -> dst, and only when both endpoints are known devices;
// links referencing unknown devices are dropped with a warning. The
// builder trusts the discovery layer to report both directions of a
// bidirectional link as separate records and never synthesizes the
// reverse arc itself. Parallel links between the same device pair are
// kept as distinct arcs.
//
// Dropped links are counted on reg when one is supplied; a nil reg
// skips recording.
func BuildGraph(devices []Device, links []Link, logger logging.Logger, reg *metrics.Registry) *Graph {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	g := NewGraph()
	for _, d := range devices {
		g.AddNode(d.ID)
	}

	dropped := 0
	for _, l := range links {
		if g.AddArc(l.Src.Device, l.Dst.Device, linkWeight) {
			continue
		}
		dropped++
		logger.Warn("dropping link with unknown endpoint",
			logging.String("src", string(l.Src.Device)),
			logging.String("dst", string(l.Dst.Device)))
	}

	if reg != nil {
		reg.AddDroppedLinks(dropped)
	}

	logger.Info("graph built",
		logging.Int("nodes", g.NodeCount()),
		logging.Int("arcs", g.ArcCount()),
		logging.Int("dropped_links", dropped))

	return g
}

// BuildSnapshotGraph builds the graph from a snapshot's device and
// link tables.
func BuildSnapshotGraph(s *Snapshot, logger logging.Logger, reg *metrics.Registry) *Graph {
	return BuildGraph(s.Devices(), s.Links(), logger, reg)
}
