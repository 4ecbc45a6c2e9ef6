// Package graph holds the immutable in-memory graph that every analysis reads.
//
// A Graph is built once from node and edge records and never mutated; a new
// dataset means a new Graph. Nodes and edges are addressed by opaque string IDs
// and every index (adjacency, reverse adjacency, incident edges) is an external
// map keyed by those IDs.
package graph

// Position is an optional 2D layout hint carried through from the records.
type Position struct {
	X float64 `json:"x" validate:"finite"`
	Y float64 `json:"y" validate:"finite"`
}

// Node is a vertex record. Identity is by ID alone.
type Node struct {
	ID         string            `json:"id" validate:"required"`
	Label      string            `json:"label,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Position   *Position         `json:"position,omitempty" validate:"omitempty"`
}

// Edge is a connection record. Direction semantics are a property of the
// Graph, not of the edge.
type Edge struct {
	ID         string            `json:"id"`
	Source     string            `json:"source" validate:"required"`
	Target     string            `json:"target" validate:"required"`
	Weight     float64           `json:"weight" validate:"finite"`
	Label      string            `json:"label,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// DefaultWeight is used wherever an edge carries no weight.
const DefaultWeight = 1.0

// Incidence pairs a neighbor with the edge that reaches it.
type Incidence struct {
	Neighbor string
	Edge     *Edge
}

// Graph is an immutable node/edge set with forward and reverse adjacency.
type Graph struct {
	nodes     map[string]*Node
	nodeOrder []string
	index     map[string]int

	edges     map[string]*Edge
	edgeOrder []string

	// adjacency[u] lists v for every u->v (and v for u-v in both directions
	// when undirected). incident[u] is aligned with adjacency[u].
	adjacency map[string][]string
	reverse   map[string][]string
	incident  map[string][]Incidence

	directed bool
	weighted bool
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether any edge carries a weight other than DefaultWeight.
func (g *Graph) Weighted() bool { return g.weighted }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodeOrder) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edgeOrder) }

// NodeIDs returns node IDs in load order. The slice must not be modified.
func (g *Graph) NodeIDs() []string { return g.nodeOrder }

// EdgeIDs returns edge IDs in load order. The slice must not be modified.
func (g *Graph) EdgeIDs() []string { return g.edgeOrder }

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether id is in the node set.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Index returns the dense load-order position of a node, or -1.
func (g *Graph) Index(id string) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	return -1
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id string) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Edges returns all edges in load order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edgeOrder))
	for i, id := range g.edgeOrder {
		out[i] = g.edges[id]
	}
	return out
}

// Nodes returns all nodes in load order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodeOrder))
	for i, id := range g.nodeOrder {
		out[i] = g.nodes[id]
	}
	return out
}

// Neighbors returns the forward adjacency of id. Parallel edges repeat the
// neighbor. The slice must not be modified.
func (g *Graph) Neighbors(id string) []string { return g.adjacency[id] }

// Predecessors returns the reverse adjacency of id. The slice must not be
// modified.
func (g *Graph) Predecessors(id string) []string { return g.reverse[id] }

// IncidentEdges returns the forward incidences of id, aligned with Neighbors.
func (g *Graph) IncidentEdges(id string) []Incidence { return g.incident[id] }

// UndirectedNeighbors returns the distinct neighbors of id ignoring direction,
// without id itself. Order follows first appearance in forward then reverse
// adjacency.
func (g *Graph) UndirectedNeighbors(id string) []string {
	fwd, rev := g.adjacency[id], g.reverse[id]
	seen := make(map[string]struct{}, len(fwd)+len(rev))
	out := make([]string, 0, len(fwd))
	for _, list := range [2][]string{fwd, rev} {
		for _, v := range list {
			if v == id {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// SimpleNeighbors returns the distinct forward neighbors of id without id
// itself.
func (g *Graph) SimpleNeighbors(id string) []string {
	fwd := g.adjacency[id]
	seen := make(map[string]struct{}, len(fwd))
	out := make([]string, 0, len(fwd))
	for _, v := range fwd {
		if v == id {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// HasEdge reports whether u->v is in the forward adjacency.
func (g *Graph) HasEdge(u, v string) bool {
	for _, w := range g.adjacency[u] {
		if w == v {
			return true
		}
	}
	return false
}

// EdgesBetween returns every edge that reaches v from u in the forward
// adjacency.
func (g *Graph) EdgesBetween(u, v string) []*Edge {
	var out []*Edge
	for _, inc := range g.incident[u] {
		if inc.Neighbor == v {
			out = append(out, inc.Edge)
		}
	}
	return out
}

// MinWeight returns the lightest edge weight for the hop u->v and whether the
// hop exists at all.
func (g *Graph) MinWeight(u, v string) (float64, *Edge, bool) {
	var best *Edge
	for _, inc := range g.incident[u] {
		if inc.Neighbor != v {
			continue
		}
		if best == nil || inc.Edge.Weight < best.Weight {
			best = inc.Edge
		}
	}
	if best == nil {
		return 0, nil, false
	}
	return best.Weight, best, true
}
