package graph

import (
	"github.com/google/uuid"
)

// Build validates the records and constructs an immutable Graph in a single
// pass. Any edge naming a missing endpoint fails the whole build with a
// DanglingEdgeReference error; no partial graph is returned.
//
// A later node record with an already-seen ID replaces the earlier one but
// keeps its load position. A zero edge weight is treated as unset and becomes
// DefaultWeight; an empty edge ID is replaced with a generated UUID.
func Build(nodes []Node, edges []Edge, directed bool) (*Graph, error) {
	g := &Graph{
		nodes:     make(map[string]*Node, len(nodes)),
		nodeOrder: make([]string, 0, len(nodes)),
		index:     make(map[string]int, len(nodes)),
		edges:     make(map[string]*Edge, len(edges)),
		edgeOrder: make([]string, 0, len(edges)),
		adjacency: make(map[string][]string, len(nodes)),
		reverse:   make(map[string][]string, len(nodes)),
		incident:  make(map[string][]Incidence, len(nodes)),
		directed:  directed,
	}

	for i := range nodes {
		n := nodes[i]
		if err := validateNode(&n); err != nil {
			return nil, err
		}
		if _, exists := g.nodes[n.ID]; !exists {
			g.index[n.ID] = len(g.nodeOrder)
			g.nodeOrder = append(g.nodeOrder, n.ID)
			g.adjacency[n.ID] = nil
			g.reverse[n.ID] = nil
		}
		g.nodes[n.ID] = &n
	}

	for i := range edges {
		e := edges[i]
		if err := validateEdge(&e); err != nil {
			return nil, err
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if _, dup := g.edges[e.ID]; dup {
			return nil, InvalidRecordError("edge", e.ID, errDuplicateEdgeID)
		}
		if e.Weight == 0 {
			e.Weight = DefaultWeight
		}
		if !g.HasNode(e.Source) {
			return nil, DanglingEdgeError(e.ID, "source", e.Source)
		}
		if !g.HasNode(e.Target) {
			return nil, DanglingEdgeError(e.ID, "target", e.Target)
		}
		if e.Weight != DefaultWeight {
			g.weighted = true
		}

		edge := &e
		g.edges[edge.ID] = edge
		g.edgeOrder = append(g.edgeOrder, edge.ID)
		g.link(edge.Source, edge.Target, edge)
		if !directed {
			g.link(edge.Target, edge.Source, edge)
		}
	}

	return g, nil
}

func (g *Graph) link(from, to string, e *Edge) {
	g.adjacency[from] = append(g.adjacency[from], to)
	g.incident[from] = append(g.incident[from], Incidence{Neighbor: to, Edge: e})
	g.reverse[to] = append(g.reverse[to], from)
}
