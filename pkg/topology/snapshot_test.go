package topology

import (
	"testing"
)

func host(id, device, port string) Host {
	return Host{
		ID:       HostID(id),
		Location: Endpoint{Device: DeviceID(device), Port: port},
	}
}

// TestNewSnapshot_FirstHostLocationWins verifies that when a host is
// reported at two locations, the first attachment is kept.
func TestNewSnapshot_FirstHostLocationWins(t *testing.T) {
	s := NewSnapshot(devices("s1", "s2"), []Host{
		host("aa:bb", "s1", "1"),
		host("aa:bb", "s2", "3"),
	}, nil, nil)

	if len(s.Hosts()) != 1 {
		t.Fatalf("expected 1 host, got %d", len(s.Hosts()))
	}
	dev, ok := s.DeviceOfHost("aa:bb")
	if !ok || dev != "s1" {
		t.Errorf("first reported location must win, got %q", dev)
	}
}

// TestNewSnapshot_DuplicateDeviceIgnored verifies duplicate device
// records keep their first occurrence.
func TestNewSnapshot_DuplicateDeviceIgnored(t *testing.T) {
	s := NewSnapshot([]Device{
		{ID: "s1", Available: true},
		{ID: "s1", Available: false},
	}, nil, nil, nil)

	if len(s.Devices()) != 1 {
		t.Fatalf("expected 1 device, got %d", len(s.Devices()))
	}
	d, _ := s.Device("s1")
	if !d.Available {
		t.Error("first device record must win")
	}
}

// TestSnapshot_HostLookups covers the host attachment helpers.
func TestSnapshot_HostLookups(t *testing.T) {
	s := NewSnapshot(devices("s1"), []Host{host("aa:bb", "s1", "2")}, nil, nil)

	if !s.HostConnected("aa:bb") {
		t.Error("aa:bb should be connected")
	}
	if s.HostConnected("cc:dd") {
		t.Error("cc:dd should not be connected")
	}

	loc, ok := s.HostLocation("aa:bb")
	if !ok || loc.Device != "s1" || loc.Port != "2" {
		t.Errorf("unexpected location %+v", loc)
	}

	if _, ok := s.DeviceOfHost("cc:dd"); ok {
		t.Error("unknown host must not resolve to a device")
	}
}

// TestSnapshot_Stats verifies the snapshot summary counters.
func TestSnapshot_Stats(t *testing.T) {
	s := NewSnapshot([]Device{
		{ID: "s1", Available: true},
		{ID: "s2", Available: false},
		{ID: "s3", Available: true},
	}, []Host{host("aa:bb", "s1", "1")}, []Link{link("s1", "s2")}, nil)

	got := s.Stats()
	want := Stats{Devices: 3, ActiveDevices: 2, Hosts: 1, Links: 1}
	if got != want {
		t.Errorf("stats = %+v, want %+v", got, want)
	}
}

// TestGraph_Interning verifies node interning is idempotent and
// adjacency keeps insertion order.
func TestGraph_Interning(t *testing.T) {
	g := NewGraph()
	a := g.AddNode("s1")
	b := g.AddNode("s1")
	if a != b {
		t.Errorf("re-adding a node must return the same index: %d vs %d", a, b)
	}

	g.AddNode("s2")
	g.AddNode("s3")
	g.AddArc("s1", "s3", 1)
	g.AddArc("s1", "s2", 1)

	row := g.Neighbors(a)
	if len(row) != 2 || g.NodeID(row[0].To) != "s3" || g.NodeID(row[1].To) != "s2" {
		t.Errorf("adjacency must keep insertion order, got %v", row)
	}

	if g.AddArc("s1", "s9", 1) {
		t.Error("arc to unknown node must be rejected")
	}
}
