package routing

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-netpath/pkg/config"
	"github.com/dd0wney/cluso-netpath/pkg/logging"
	"github.com/dd0wney/cluso-netpath/pkg/metrics"
	"github.com/dd0wney/cluso-netpath/pkg/pathfind"
	"github.com/dd0wney/cluso-netpath/pkg/topology"
)

// Resolver answers host-to-host and device-to-device route queries
// over one immutable snapshot/graph pair. It keeps no per-query state,
// so a Resolver is safe for concurrent use; swapping in a refreshed
// snapshot means building a new Resolver.
type Resolver struct {
	snap  *topology.Snapshot
	graph *topology.Graph

	logger  logging.Logger
	metrics *metrics.Registry

	enumerationLimit int
	defaultK         int
	maxAlternatives  int
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithLogger attaches a logger; the default discards output.
func WithLogger(l logging.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// WithMetrics attaches a metrics registry, replacing the process-wide
// default.
func WithMetrics(m *metrics.Registry) Option {
	return func(r *Resolver) { r.metrics = m }
}

// NewResolver builds a resolver over the given snapshot and graph.
func NewResolver(snap *topology.Snapshot, graph *topology.Graph, cfg config.Config, opts ...Option) *Resolver {
	r := &Resolver{
		snap:             snap,
		graph:            graph,
		logger:           logging.NewNopLogger(),
		metrics:          metrics.DefaultRegistry(),
		enumerationLimit: cfg.EnumerationLimit,
		defaultK:         cfg.DefaultK,
		maxAlternatives:  cfg.MaxAlternatives,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(logging.Component("routing"))

	if r.metrics != nil {
		ts := snap.Stats()
		r.metrics.UpdateTopology(ts.Devices, ts.ActiveDevices, ts.Hosts, ts.Links,
			graph.NodeCount(), graph.ArcCount())
	}
	return r
}

// newRoute seeds a result for one query.
func (r *Resolver) newRoute(src, dst topology.HostID) Route {
	return Route{
		QueryID:  uuid.NewString(),
		SrcHost:  src,
		DstHost:  dst,
		Distance: unreachable(),
	}
}

func (r *Resolver) fail(route Route, status Status, message string) Route {
	route.Success = false
	route.Status = status
	route.Message = message
	r.logger.Warn("path query failed",
		logging.QueryID(route.QueryID),
		logging.String("status", string(status)),
		logging.Host(string(route.SrcHost)),
		logging.Host(string(route.DstHost)))
	return route
}

func (r *Resolver) record(queryType string, route Route, started time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.RecordPathQuery(queryType, string(route.Status), time.Since(started))
	if route.Success {
		r.metrics.RecordPathHops(queryType, len(route.DevicePath)-1)
	}
}

// HostPath computes the host-to-host path over the device graph. The
// result path brackets the device path with host_<id> tokens.
func (r *Resolver) HostPath(src, dst topology.HostID) Route {
	started := time.Now()
	route := r.hostPathRoute(src, dst)
	r.record("host_path", route, started)
	return route
}

func (r *Resolver) hostPathRoute(src, dst topology.HostID) Route {
	route := r.newRoute(src, dst)

	if !r.snap.HostConnected(src) {
		return r.fail(route, StatusUnknownHost, fmt.Sprintf("source host %s is not connected", src))
	}
	if !r.snap.HostConnected(dst) {
		return r.fail(route, StatusUnknownHost, fmt.Sprintf("destination host %s is not connected", dst))
	}
	if r.graph.NodeCount() == 0 {
		return r.fail(route, StatusEmptyGraph, "topology snapshot has no devices")
	}

	srcDev, _ := r.snap.DeviceOfHost(src)
	dstDev, _ := r.snap.DeviceOfHost(dst)
	route.SrcDevice = srcDev
	route.DstDevice = dstDev

	devicePath, distance := pathfind.ShortestPath(r.graph, srcDev, dstDev)
	if len(devicePath) == 0 {
		return r.fail(route, StatusUnreachable,
			fmt.Sprintf("no path from device %s to %s", srcDev, dstDev))
	}

	route.Success = true
	route.Status = StatusOK
	route.Message = "path computed"
	route.DevicePath = devicePath
	route.Distance = distance
	route.Path = hostPath(src, devicePath, dst)
	route.HopCount = len(devicePath) - 1
	route.Quality = qualityFor(route.HopCount)

	r.logger.Info("host path computed",
		logging.QueryID(route.QueryID),
		logging.Host(string(src)),
		logging.Host(string(dst)),
		logging.Distance(distance),
		logging.Hops(len(devicePath)-1))

	return route
}

// OptimalRoute decorates HostPath with up to MaxAlternatives
// alternative routes ranked by cost.
func (r *Resolver) OptimalRoute(src, dst topology.HostID) Route {
	started := time.Now()

	route := r.hostPathRoute(src, dst)
	if !route.Success {
		r.record("optimal_route", route, started)
		return route
	}

	route.Alternatives = r.alternatives(src, dst, route.SrcDevice, route.DstDevice)

	if r.metrics != nil {
		r.metrics.RecordAlternatives(len(route.Alternatives))
	}
	r.record("optimal_route", route, started)
	return route
}

// alternatives ranks candidate device paths and keeps the non-primary
// ones. The first ranked entry is the optimal path and is skipped.
func (r *Resolver) alternatives(src, dst topology.HostID, srcDev, dstDev topology.DeviceID) []AltRoute {
	if r.maxAlternatives <= 0 {
		return nil
	}

	ranked := pathfind.KShortest(r.graph, srcDev, dstDev, r.maxAlternatives+1)
	if len(ranked) <= 1 {
		return nil
	}

	alts := make([]AltRoute, 0, r.maxAlternatives)
	for _, rp := range ranked[1:] {
		if len(alts) == r.maxAlternatives {
			break
		}
		hops := len(rp.Path) - 1
		alts = append(alts, AltRoute{
			Path:       hostPath(src, rp.Path, dst),
			DevicePath: rp.Path,
			Distance:   rp.Distance,
			HopCount:   hops,
			Quality:    qualityFor(hops),
		})
	}
	return alts
}

// DevicePath answers a device-to-device shortest path query directly,
// bypassing the host table.
func (r *Resolver) DevicePath(src, dst topology.DeviceID) Route {
	started := time.Now()
	route := Route{QueryID: uuid.NewString(), SrcDevice: src, DstDevice: dst, Distance: unreachable()}

	if r.graph.NodeCount() == 0 {
		route = r.fail(route, StatusEmptyGraph, "topology snapshot has no devices")
		r.record("device_path", route, started)
		return route
	}
	if !r.graph.HasNode(src) || !r.graph.HasNode(dst) {
		route = r.fail(route, StatusUnknownNode,
			fmt.Sprintf("device %s or %s is not in the topology", src, dst))
		r.record("device_path", route, started)
		return route
	}

	devicePath, distance := pathfind.ShortestPath(r.graph, src, dst)
	if len(devicePath) == 0 {
		route = r.fail(route, StatusUnreachable,
			fmt.Sprintf("no path from device %s to %s", src, dst))
		r.record("device_path", route, started)
		return route
	}

	route.Success = true
	route.Status = StatusOK
	route.Message = "path computed"
	route.DevicePath = devicePath
	route.Distance = distance
	route.HopCount = len(devicePath) - 1
	route.Quality = qualityFor(route.HopCount)

	r.record("device_path", route, started)
	return route
}

// RankedDevicePaths returns up to DefaultK device paths between two
// hosts' attachment devices, cheapest first. Used by diagnostic
// surfaces that want the route spread, not just the optimum.
func (r *Resolver) RankedDevicePaths(src, dst topology.HostID) []pathfind.RankedPath {
	srcDev, ok := r.snap.DeviceOfHost(src)
	if !ok {
		return nil
	}
	dstDev, ok := r.snap.DeviceOfHost(dst)
	if !ok {
		return nil
	}
	return pathfind.KShortest(r.graph, srcDev, dstDev, r.defaultK)
}

// SimpleDevicePaths enumerates simple device paths between two
// devices, bounded by the configured enumeration limit.
func (r *Resolver) SimpleDevicePaths(src, dst topology.DeviceID) [][]topology.DeviceID {
	paths, truncated := pathfind.EnumeratePaths(r.graph, src, dst, r.enumerationLimit)
	if truncated {
		if r.metrics != nil {
			r.metrics.RecordEnumerationTruncated()
		}
		r.logger.Warn("path enumeration hit the configured limit",
			logging.Device(string(src)),
			logging.Device(string(dst)),
			logging.Int("limit", r.enumerationLimit))
	}
	return paths
}

// TopologyStats summarizes the snapshot backing this resolver.
func (r *Resolver) TopologyStats() topology.Stats {
	return r.snap.Stats()
}

// GraphStats summarizes the graph backing this resolver.
func (r *Resolver) GraphStats() pathfind.GraphStats {
	return pathfind.Stats(r.graph)
}
