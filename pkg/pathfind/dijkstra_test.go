package pathfind

import (
	"math"
	"testing"

	"github.com/dd0wney/cluso-netpath/pkg/topology"
)

type edge struct {
	from, to string
	weight   int
}

func newTestGraph(nodes []string, edges []edge) *topology.Graph {
	g := topology.NewGraph()
	for _, n := range nodes {
		g.AddNode(topology.DeviceID(n))
	}
	for _, e := range edges {
		g.AddArc(topology.DeviceID(e.from), topology.DeviceID(e.to), e.weight)
	}
	return g
}

// chainGraph is the four-switch line s1 - s2 - s3 - s4 with both
// directions reported.
func chainGraph() *topology.Graph {
	return newTestGraph([]string{"s1", "s2", "s3", "s4"}, []edge{
		{"s1", "s2", 1},
		{"s2", "s1", 1}, {"s2", "s3", 1},
		{"s3", "s2", 1}, {"s3", "s4", 1},
		{"s4", "s3", 1},
	})
}

func pathEquals(path []topology.DeviceID, want ...string) bool {
	if len(path) != len(want) {
		return false
	}
	for i, w := range want {
		if path[i] != topology.DeviceID(w) {
			return false
		}
	}
	return true
}

func TestShortestPath_SameNode(t *testing.T) {
	g := chainGraph()

	path, dist := ShortestPath(g, "s2", "s2")
	if !pathEquals(path, "s2") {
		t.Errorf("expected [s2], got %v", path)
	}
	if dist != 0 {
		t.Errorf("expected distance 0, got %v", dist)
	}
}

func TestShortestPath_AbsentEndpoint(t *testing.T) {
	g := chainGraph()

	for _, pair := range [][2]topology.DeviceID{{"s9", "s1"}, {"s1", "s9"}} {
		path, dist := ShortestPath(g, pair[0], pair[1])
		if path != nil {
			t.Errorf("%v: expected nil path, got %v", pair, path)
		}
		if !math.IsInf(dist, 1) {
			t.Errorf("%v: expected +Inf, got %v", pair, dist)
		}
	}
}

func TestShortestPath_Chain(t *testing.T) {
	g := chainGraph()

	path, dist := ShortestPath(g, "s1", "s4")
	if !pathEquals(path, "s1", "s2", "s3", "s4") {
		t.Errorf("expected [s1 s2 s3 s4], got %v", path)
	}
	if dist != 3 {
		t.Errorf("expected distance 3, got %v", dist)
	}
}

func TestShortestPath_WeightedDetour(t *testing.T) {
	// Direct a->b costs 5, detour a->c->b costs 3.
	g := newTestGraph([]string{"a", "b", "c"}, []edge{
		{"a", "b", 5},
		{"a", "c", 2},
		{"c", "b", 1},
	})

	path, dist := ShortestPath(g, "a", "b")
	if !pathEquals(path, "a", "c", "b") {
		t.Errorf("expected [a c b], got %v", path)
	}
	if dist != 3 {
		t.Errorf("expected distance 3, got %v", dist)
	}
}

func TestShortestPath_DistanceEqualsPathWeights(t *testing.T) {
	g := newTestGraph([]string{"a", "b", "c", "d"}, []edge{
		{"a", "b", 2},
		{"b", "c", 3},
		{"c", "d", 4},
		{"a", "d", 10},
	})

	path, dist := ShortestPath(g, "a", "d")
	var sum float64
	for i := 0; i+1 < len(path); i++ {
		from, _ := g.NodeIndex(path[i])
		to, _ := g.NodeIndex(path[i+1])
		for _, arc := range g.Neighbors(from) {
			if arc.To == to {
				sum += float64(arc.Weight)
				break
			}
		}
	}
	if dist != sum {
		t.Errorf("distance %v does not equal path weight sum %v", dist, sum)
	}
}

func TestShortestPath_Disconnected(t *testing.T) {
	// Two components with no connecting link.
	g := newTestGraph([]string{"a", "b", "c", "d"}, []edge{
		{"a", "b", 1}, {"b", "a", 1},
		{"c", "d", 1}, {"d", "c", 1},
	})

	path, dist := ShortestPath(g, "a", "d")
	if path != nil {
		t.Errorf("expected nil path across components, got %v", path)
	}
	if !math.IsInf(dist, 1) {
		t.Errorf("expected +Inf, got %v", dist)
	}
	if IsConnected(g) {
		t.Error("split graph must not be connected")
	}
}

// TestShortestPath_LexicographicTieBreak pins the deterministic
// tie-break: among equal-cost candidates the lexicographically
// smallest node token wins, regardless of insertion order.
func TestShortestPath_LexicographicTieBreak(t *testing.T) {
	// Diamond a -> {c, b} -> d with equal costs; c is inserted and
	// discovered before b, but b must be chosen.
	g := newTestGraph([]string{"a", "c", "b", "d"}, []edge{
		{"a", "c", 1},
		{"a", "b", 1},
		{"c", "d", 1},
		{"b", "d", 1},
	})

	for i := 0; i < 5; i++ {
		path, dist := ShortestPath(g, "a", "d")
		if !pathEquals(path, "a", "b", "d") {
			t.Fatalf("expected deterministic [a b d], got %v", path)
		}
		if dist != 2 {
			t.Fatalf("expected distance 2, got %v", dist)
		}
	}
}

func TestShortestPath_EmptyGraph(t *testing.T) {
	g := topology.NewGraph()

	path, dist := ShortestPath(g, "a", "b")
	if path != nil || !math.IsInf(dist, 1) {
		t.Errorf("expected (nil, +Inf) on empty graph, got (%v, %v)", path, dist)
	}
}
