package pathfind

import (
	"sort"

	"github.com/dd0wney/cluso-netpath/pkg/topology"
)

// RankedPath is a candidate path together with its summed weight.
type RankedPath struct {
	Path     []topology.DeviceID
	Distance float64
}

// KShortest returns up to k paths from start to end ranked by
// ascending total weight.
//
// This is a bounded approximation, not an exact k-shortest-paths
// algorithm: it enumerates at most 2k simple paths depth-first, prices
// each one, and sorts. In dense graphs with more than 2k simple paths
// the true k-th shortest can be missed. The ranking is stable, so
// equal-cost paths keep their DFS discovery order.
func KShortest(g *topology.Graph, start, end topology.DeviceID, k int) []RankedPath {
	if k <= 0 {
		return nil
	}

	candidates, _ := EnumeratePaths(g, start, end, 2*k)
	ranked := make([]RankedPath, 0, len(candidates))
	for _, p := range candidates {
		ranked = append(ranked, RankedPath{Path: p, Distance: pathCost(g, p)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// pathCost sums arc weights hop by hop. With parallel arcs between a
// pair, the first matching arc is charged rather than the cheapest;
// the builder keeps parallel links as-is and this pricing mirrors the
// adjacency order on purpose.
func pathCost(g *topology.Graph, path []topology.DeviceID) float64 {
	var cost float64
	for i := 0; i+1 < len(path); i++ {
		from, ok := g.NodeIndex(path[i])
		if !ok {
			continue
		}
		to, ok := g.NodeIndex(path[i+1])
		if !ok {
			continue
		}
		for _, arc := range g.Neighbors(from) {
			if arc.To == to {
				cost += float64(arc.Weight)
				break
			}
		}
	}
	return cost
}
