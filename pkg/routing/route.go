// Package routing resolves host-to-host routes over one topology
// snapshot. Every public operation returns a Route value; failures are
// statuses with human-readable messages, never errors or panics.
package routing

import (
	"github.com/dd0wney/cluso-netpath/pkg/pathfind"
	"github.com/dd0wney/cluso-netpath/pkg/topology"
)

// Status classifies a route query outcome.
type Status string

const (
	StatusOK          Status = "ok"
	StatusUnknownHost Status = "unknown_host"
	StatusUnknownNode Status = "unknown_node"
	StatusUnreachable Status = "unreachable"
	StatusEmptyGraph  Status = "empty_graph"
)

// Quality buckets for hop-count classification.
const (
	QualityExcellent = "excellent"
	QualityGood      = "good"
	QualityFair      = "fair"
	QualityPoor      = "poor"
)

// AltRoute is one alternative route attached to an optimal-route
// result.
type AltRoute struct {
	Path       []string
	DevicePath []topology.DeviceID
	Distance   float64
	HopCount   int
	Quality    string
}

// Route is the result of one path query. It is built fresh per query
// and never mutated after being returned. Distance is +Inf whenever no
// path was found.
type Route struct {
	QueryID string
	Success bool
	Status  Status
	Message string

	SrcHost   topology.HostID
	DstHost   topology.HostID
	SrcDevice topology.DeviceID
	DstDevice topology.DeviceID

	// Path brackets DevicePath with host tokens on success.
	Path       []string
	DevicePath []topology.DeviceID
	Distance   float64

	HopCount     int
	Quality      string
	Alternatives []AltRoute
}

// qualityFor buckets a device hop count for display.
func qualityFor(hopCount int) string {
	switch {
	case hopCount <= 2:
		return QualityExcellent
	case hopCount <= 4:
		return QualityGood
	case hopCount <= 6:
		return QualityFair
	default:
		return QualityPoor
	}
}

// hostToken is the token used for hosts inside a mixed path.
func hostToken(id topology.HostID) string {
	return "host_" + string(id)
}

// hostPath brackets a device path with the two host tokens.
func hostPath(src topology.HostID, devicePath []topology.DeviceID, dst topology.HostID) []string {
	path := make([]string, 0, len(devicePath)+2)
	path = append(path, hostToken(src))
	for _, d := range devicePath {
		path = append(path, string(d))
	}
	path = append(path, hostToken(dst))
	return path
}

// unreachable is the no-path distance sentinel shared with pathfind.
func unreachable() float64 { return pathfind.Unreachable() }
