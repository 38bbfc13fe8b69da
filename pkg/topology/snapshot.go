package topology

import (
	"github.com/dd0wney/cluso-netpath/pkg/logging"
)

// Snapshot is one fully-materialized view of the discovered topology.
// It is rebuilt wholesale on every refresh and treated as immutable for
// the duration of a query; nothing in this package mutates it after
// NewSnapshot returns.
type Snapshot struct {
	devices []Device
	hosts   []Host
	links   []Link

	deviceIdx map[DeviceID]int
	hostIdx   map[HostID]int
}

// NewSnapshot assembles a snapshot from raw discovery records.
// Duplicate device or host identifiers keep their first occurrence;
// in particular a host's first reported attachment wins.
func NewSnapshot(devices []Device, hosts []Host, links []Link, logger logging.Logger) *Snapshot {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	s := &Snapshot{
		deviceIdx: make(map[DeviceID]int, len(devices)),
		hostIdx:   make(map[HostID]int, len(hosts)),
	}

	for _, d := range devices {
		if _, seen := s.deviceIdx[d.ID]; seen {
			logger.Warn("duplicate device record ignored", logging.Device(string(d.ID)))
			continue
		}
		s.deviceIdx[d.ID] = len(s.devices)
		s.devices = append(s.devices, d)
	}

	for _, h := range hosts {
		if _, seen := s.hostIdx[h.ID]; seen {
			// First reported location wins.
			logger.Warn("duplicate host record ignored", logging.Host(string(h.ID)))
			continue
		}
		s.hostIdx[h.ID] = len(s.hosts)
		s.hosts = append(s.hosts, h)
	}

	s.links = append(s.links, links...)

	logger.Info("topology snapshot assembled",
		logging.Int("devices", len(s.devices)),
		logging.Int("hosts", len(s.hosts)),
		logging.Int("links", len(s.links)))

	return s
}

// Devices returns the known devices in discovery order.
func (s *Snapshot) Devices() []Device { return s.devices }

// Hosts returns the known hosts in discovery order.
func (s *Snapshot) Hosts() []Host { return s.hosts }

// Links returns the discovered link records.
func (s *Snapshot) Links() []Link { return s.links }

// Device looks up a device by identifier.
func (s *Snapshot) Device(id DeviceID) (Device, bool) {
	i, ok := s.deviceIdx[id]
	if !ok {
		return Device{}, false
	}
	return s.devices[i], true
}

// Host looks up a host by identifier.
func (s *Snapshot) Host(id HostID) (Host, bool) {
	i, ok := s.hostIdx[id]
	if !ok {
		return Host{}, false
	}
	return s.hosts[i], true
}

// HostConnected reports whether the host appears in the snapshot.
func (s *Snapshot) HostConnected(id HostID) bool {
	_, ok := s.hostIdx[id]
	return ok
}

// HostLocation returns the (device, port) a host is attached to.
func (s *Snapshot) HostLocation(id HostID) (Endpoint, bool) {
	h, ok := s.Host(id)
	if !ok {
		return Endpoint{}, false
	}
	return h.Location, true
}

// DeviceOfHost returns the device a host is attached to.
func (s *Snapshot) DeviceOfHost(id HostID) (DeviceID, bool) {
	h, ok := s.Host(id)
	if !ok {
		return "", false
	}
	return h.Location.Device, true
}

// HostIDs returns all host identifiers in discovery order.
func (s *Snapshot) HostIDs() []HostID {
	ids := make([]HostID, len(s.hosts))
	for i, h := range s.hosts {
		ids[i] = h.ID
	}
	return ids
}

// Stats summarizes the snapshot.
func (s *Snapshot) Stats() Stats {
	active := 0
	for _, d := range s.devices {
		if d.Available {
			active++
		}
	}
	return Stats{
		Devices:       len(s.devices),
		ActiveDevices: active,
		Hosts:         len(s.hosts),
		Links:         len(s.links),
	}
}
