package pathfind

import (
	"testing"

	"github.com/dd0wney/cluso-netpath/pkg/topology"
)

func TestStats_Chain(t *testing.T) {
	g := chainGraph()

	got := Stats(g)
	if got.Nodes != 4 {
		t.Errorf("nodes = %d, want 4", got.Nodes)
	}
	// 6 directed arcs, halved under the symmetric-link contract.
	if got.Edges != 3 {
		t.Errorf("edges = %d, want 3", got.Edges)
	}
	if !got.Connected {
		t.Error("chain should be connected")
	}
	if got.AverageDegree != 1.5 {
		t.Errorf("average degree = %v, want 1.5", got.AverageDegree)
	}
}

func TestStats_EmptyGraph(t *testing.T) {
	g := topology.NewGraph()

	got := Stats(g)
	if got.Nodes != 0 || got.Edges != 0 || got.AverageDegree != 0 {
		t.Errorf("unexpected stats for empty graph: %+v", got)
	}
	if got.Connected {
		t.Error("empty graph must not report connected")
	}
}

func TestIsConnected_SingleNode(t *testing.T) {
	g := newTestGraph([]string{"a"}, nil)

	if !IsConnected(g) {
		t.Error("single node graph is connected")
	}
}

func TestIsConnected_TwoComponents(t *testing.T) {
	g := newTestGraph([]string{"a", "b", "c", "d"}, []edge{
		{"a", "b", 1}, {"b", "a", 1},
		{"c", "d", 1}, {"d", "c", 1},
	})

	if IsConnected(g) {
		t.Error("two components must not report connected")
	}
}

func TestIsConnected_IsolatedNode(t *testing.T) {
	g := newTestGraph([]string{"a", "b", "c"}, []edge{
		{"a", "b", 1}, {"b", "a", 1},
	})

	if IsConnected(g) {
		t.Error("graph with isolated node must not report connected")
	}
}
