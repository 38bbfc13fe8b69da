// Package pathfind implements the pure path-computation engine:
// shortest paths, bounded simple-path enumeration, an approximate
// k-shortest ranking, and graph-level statistics. Every function reads
// one immutable graph snapshot and keeps no state between calls.
package pathfind

import (
	"container/heap"
	"math"

	"github.com/dd0wney/cluso-netpath/pkg/topology"
)

// Unreachable is the canonical no-path distance sentinel.
func Unreachable() float64 { return math.Inf(1) }

// queueItem is one entry of the Dijkstra priority queue. The node
// token rides along so equal distances break lexicographically.
type queueItem struct {
	dist float64
	node int
	id   topology.DeviceID
}

// nodeQueue orders by (distance, node token). The token tie-break is
// load-bearing: it makes the chosen path deterministic when several
// candidates have equal cost, so repeated queries over the same
// snapshot always return the same route.
type nodeQueue []queueItem

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].id < q[j].id
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(queueItem)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// ShortestPath runs Dijkstra's algorithm from start to end over the
// directed weighted graph. It returns the node sequence and its total
// weight. When either endpoint is absent or no path exists it returns
// (nil, +Inf). For start == end it returns ([start], 0).
func ShortestPath(g *topology.Graph, start, end topology.DeviceID) ([]topology.DeviceID, float64) {
	s, ok := g.NodeIndex(start)
	if !ok {
		return nil, Unreachable()
	}
	e, ok := g.NodeIndex(end)
	if !ok {
		return nil, Unreachable()
	}
	if s == e {
		return []topology.DeviceID{start}, 0
	}

	n := g.NodeCount()
	dist := make([]float64, n)
	prev := make([]int, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[s] = 0

	q := nodeQueue{{dist: 0, node: s, id: start}}
	heap.Init(&q)

	for q.Len() > 0 {
		cur := heap.Pop(&q).(queueItem)
		if visited[cur.node] {
			continue
		}
		visited[cur.node] = true
		if cur.node == e {
			break
		}

		for _, arc := range g.Neighbors(cur.node) {
			if visited[arc.To] {
				continue
			}
			d := cur.dist + float64(arc.Weight)
			if d < dist[arc.To] {
				dist[arc.To] = d
				prev[arc.To] = cur.node
				heap.Push(&q, queueItem{dist: d, node: arc.To, id: g.NodeID(arc.To)})
			}
		}
	}

	// Walk predecessors back from end; if the walk does not reach
	// start, the endpoints are disconnected.
	path := make([]topology.DeviceID, 0, 8)
	for at := e; at != -1; at = prev[at] {
		path = append(path, g.NodeID(at))
	}
	if path[len(path)-1] != start {
		return nil, Unreachable()
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[e]
}
