package pathfind

import (
	"github.com/dd0wney/cluso-netpath/pkg/topology"
)

// frame is one level of the iterative DFS: a node on the current path
// and the cursor into its adjacency row.
type frame struct {
	node int
	next int
}

// EnumeratePaths collects simple paths (no repeated node) from start
// to end in depth-first order, visiting neighbors in adjacency
// insertion order, and stops as soon as limit paths are found. The
// second return value reports whether the limit stopped the search;
// when exactly limit paths exist the search still stops on the last
// one and reports truncation.
//
// The search is exhaustive and worst-case exponential in graph
// density; the limit bound is the only cost control, so callers must
// always supply one. The traversal uses an explicit frame stack
// rather than recursion, keeping the limit check a plain loop
// condition and avoiding call-depth limits on deep topologies.
func EnumeratePaths(g *topology.Graph, start, end topology.DeviceID, limit int) ([][]topology.DeviceID, bool) {
	if limit <= 0 {
		return nil, false
	}
	s, ok := g.NodeIndex(start)
	if !ok {
		return nil, false
	}
	e, ok := g.NodeIndex(end)
	if !ok {
		return nil, false
	}
	if s == e {
		return [][]topology.DeviceID{{start}}, false
	}

	var found [][]topology.DeviceID

	onPath := make([]bool, g.NodeCount())
	onPath[s] = true
	stack := []frame{{node: s}}
	trail := []int{s}

	for len(stack) > 0 && len(found) < limit {
		top := &stack[len(stack)-1]
		row := g.Neighbors(top.node)

		descended := false
		for top.next < len(row) {
			arc := row[top.next]
			top.next++

			if arc.To == e {
				path := make([]topology.DeviceID, 0, len(trail)+1)
				for _, ix := range trail {
					path = append(path, g.NodeID(ix))
				}
				path = append(path, end)
				found = append(found, path)
				if len(found) >= limit {
					return found, true
				}
				continue
			}
			if onPath[arc.To] {
				continue
			}

			onPath[arc.To] = true
			trail = append(trail, arc.To)
			stack = append(stack, frame{node: arc.To})
			descended = true
			break
		}

		if !descended && top.next >= len(row) {
			last := stack[len(stack)-1].node
			onPath[last] = false
			stack = stack[:len(stack)-1]
			trail = trail[:len(trail)-1]
		}
	}

	return found, false
}
