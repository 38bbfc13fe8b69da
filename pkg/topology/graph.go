package topology

// Arc is a directed, weighted edge in the adjacency structure. To is
// the interned index of the neighbor node.
type Arc struct {
	To     int
	Weight int
}

// Graph is the adjacency structure the path engine runs on. Node
// tokens are interned to dense integer indices at construction time so
// the hot shortest-path loop never hashes strings. Adjacency rows keep
// insertion order; parallel arcs between the same pair are kept as-is.
type Graph struct {
	index map[DeviceID]int
	ids   []DeviceID
	adj   [][]Arc
	arcs  int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[DeviceID]int)}
}

// AddNode interns the identifier and returns its index. Adding an
// existing node is a no-op returning the original index.
func (g *Graph) AddNode(id DeviceID) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.ids)
	g.index[id] = i
	g.ids = append(g.ids, id)
	g.adj = append(g.adj, nil)
	return i
}

// AddArc appends a directed arc from -> to. Both endpoints must
// already be nodes; otherwise the arc is rejected.
func (g *Graph) AddArc(from, to DeviceID, weight int) bool {
	fi, ok := g.index[from]
	if !ok {
		return false
	}
	ti, ok := g.index[to]
	if !ok {
		return false
	}
	g.adj[fi] = append(g.adj[fi], Arc{To: ti, Weight: weight})
	g.arcs++
	return true
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.ids) }

// ArcCount returns the total number of directed arcs.
func (g *Graph) ArcCount() int { return g.arcs }

// HasNode reports whether the identifier is a node of the graph.
func (g *Graph) HasNode(id DeviceID) bool {
	_, ok := g.index[id]
	return ok
}

// NodeIndex returns the interned index for an identifier.
func (g *Graph) NodeIndex(id DeviceID) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// NodeID returns the identifier for an interned index.
func (g *Graph) NodeID(i int) DeviceID { return g.ids[i] }

// NodeIDs returns all node identifiers in insertion order.
func (g *Graph) NodeIDs() []DeviceID {
	ids := make([]DeviceID, len(g.ids))
	copy(ids, g.ids)
	return ids
}

// Neighbors returns the adjacency row of a node in insertion order.
// The returned slice is shared with the graph and must not be mutated.
func (g *Graph) Neighbors(i int) []Arc { return g.adj[i] }
