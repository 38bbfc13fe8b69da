package topology

// DeviceID identifies a forwarding device reported by the discovery layer.
type DeviceID string

// HostID identifies an end-station, typically a MAC-like token.
type HostID string

// Endpoint is one side of a link or a host attachment point.
type Endpoint struct {
	Device DeviceID
	Port   string
}

// Device is a forwarding element known to the current snapshot.
type Device struct {
	ID        DeviceID
	Available bool
}

// Link is a discovered directed adjacency between two devices.
// The discovery layer reports each direction as its own link record;
// the builder never synthesizes a reverse link.
type Link struct {
	Src Endpoint
	Dst Endpoint
}

// Host is an end-station attached to exactly one (device, port) pair
// within a snapshot.
type Host struct {
	ID        HostID
	Addresses []string
	Location  Endpoint
}

// Stats summarizes one snapshot for display and metrics.
type Stats struct {
	Devices       int
	ActiveDevices int
	Hosts         int
	Links         int
}
