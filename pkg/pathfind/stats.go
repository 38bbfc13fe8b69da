package pathfind

import (
	"github.com/dd0wney/cluso-netpath/pkg/topology"
)

// GraphStats summarizes a graph for display and monitoring.
type GraphStats struct {
	Nodes         int
	Edges         int
	Connected     bool
	AverageDegree float64
}

// Stats computes node/edge counts, connectivity, and average outgoing
// degree. The edge count halves the total arc count, assuming the
// discovery layer reports both directions of every link; with an
// asymmetric feed the figure undercounts.
func Stats(g *topology.Graph) GraphStats {
	nodes := g.NodeCount()
	arcs := g.ArcCount()

	avg := 0.0
	if nodes > 0 {
		avg = float64(arcs) / float64(nodes)
	}

	return GraphStats{
		Nodes:         nodes,
		Edges:         arcs / 2,
		Connected:     IsConnected(g),
		AverageDegree: avg,
	}
}

// IsConnected reports whether every node is reachable from the first
// inserted node following outgoing arcs only. Under the builder's
// symmetric-link contract this matches undirected connectivity; on a
// genuinely asymmetric graph it only tests forward reachability from
// one node. An empty graph is not connected.
func IsConnected(g *topology.Graph) bool {
	n := g.NodeCount()
	if n == 0 {
		return false
	}

	visited := make([]bool, n)
	visited[0] = true
	seen := 1

	stack := []int{0}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, arc := range g.Neighbors(cur) {
			if !visited[arc.To] {
				visited[arc.To] = true
				seen++
				stack = append(stack, arc.To)
			}
		}
	}

	return seen == n
}
