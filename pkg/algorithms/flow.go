package algorithms

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
)

// ErrNegativeCapacity is returned when an edge weight used as capacity is negative.
var ErrNegativeCapacity = errors.New("negative edge capacity")

// flowEpsilon treats residual capacities at or below it as saturated.
const flowEpsilon = 1e-9

// FlowResult describes a maximum flow and the minimum cut it certifies.
type FlowResult struct {
	MaxFlow         float64  `json:"max_flow"`
	FlowPaths       []Path   `json:"flow_paths"`
	CutEdges        []string `json:"cut_edges"`
	SourcePartition []string `json:"source_partition"`
	SinkPartition   []string `json:"sink_partition"`
}

// residualArc is one direction of a residual edge. rev indexes the paired arc
// in the target's list.
type residualArc struct {
	to     int
	rev    int
	cap    float64
	flow   float64
	edgeID string
}

func (a *residualArc) residual() float64 { return a.cap - a.flow }

type residualGraph struct {
	arcs [][]residualArc
}

func (r *residualGraph) addPair(u, v int, forward, backward float64, edgeID string) {
	r.arcs[u] = append(r.arcs[u], residualArc{to: v, rev: len(r.arcs[v]), cap: forward, edgeID: edgeID})
	r.arcs[v] = append(r.arcs[v], residualArc{to: u, rev: len(r.arcs[u]) - 1, cap: backward, edgeID: edgeID})
}

// MaxFlow computes the maximum flow from source to sink with Edmonds-Karp
// (BFS shortest augmenting paths), using edge weights as capacities.
// Undirected edges carry capacity in both directions. One Path is recorded
// per augmentation with its bottleneck as Weight. The cut edges run from the
// nodes still reachable from source in the residual graph to the rest.
// When source equals sink the flow is zero and the source side is {source}.
func MaxFlow(g *graph.Graph, source, sink string) (*FlowResult, error) {
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %q", ErrNodeNotFound, source)
	}
	if !g.HasNode(sink) {
		return nil, fmt.Errorf("%w: sink %q", ErrNodeNotFound, sink)
	}

	ids := g.NodeIDs()
	n := len(ids)
	s, t := g.Index(source), g.Index(sink)

	res := &residualGraph{arcs: make([][]residualArc, n)}
	for _, e := range g.Edges() {
		if e.Weight < -flowEpsilon {
			return nil, fmt.Errorf("%w: edge %q weight %g", ErrNegativeCapacity, e.ID, e.Weight)
		}
		u, v := g.Index(e.Source), g.Index(e.Target)
		if u == v {
			continue
		}
		backward := 0.0
		if !g.Directed() {
			backward = e.Weight
		}
		res.addPair(u, v, e.Weight, backward, e.ID)
	}

	result := &FlowResult{}
	if s == t {
		result.SourcePartition = []string{source}
		for _, id := range ids {
			if id != source {
				result.SinkPartition = append(result.SinkPartition, id)
			}
		}
		return result, nil
	}

	parentNode := make([]int, n)
	parentArc := make([]int, n)
	for res.augmentingPath(s, t, parentNode, parentArc) {
		bottleneck := -1.0
		for v := t; v != s; v = parentNode[v] {
			a := &res.arcs[parentNode[v]][parentArc[v]]
			if bottleneck < 0 || a.residual() < bottleneck {
				bottleneck = a.residual()
			}
		}

		var nodes, edges []string
		for v := t; v != s; v = parentNode[v] {
			u := parentNode[v]
			a := &res.arcs[u][parentArc[v]]
			a.flow += bottleneck
			res.arcs[v][a.rev].flow -= bottleneck
			nodes = append(nodes, ids[v])
			edges = append(edges, a.edgeID)
		}
		nodes = append(nodes, ids[s])
		reverseStrings(nodes)
		reverseStrings(edges)

		result.MaxFlow += bottleneck
		result.FlowPaths = append(result.FlowPaths, Path{
			Source: source,
			Target: sink,
			Nodes:  nodes,
			Edges:  edges,
			Length: len(edges),
			Weight: bottleneck,
		})
	}

	sourceSide := res.reachable(s)
	for i, id := range ids {
		if sourceSide[i] {
			result.SourcePartition = append(result.SourcePartition, id)
		} else {
			result.SinkPartition = append(result.SinkPartition, id)
		}
	}
	for _, e := range g.Edges() {
		u, v := g.Index(e.Source), g.Index(e.Target)
		crosses := sourceSide[u] && !sourceSide[v]
		if !g.Directed() {
			crosses = sourceSide[u] != sourceSide[v]
		}
		if crosses {
			result.CutEdges = append(result.CutEdges, e.ID)
		}
	}
	return result, nil
}

// augmentingPath runs BFS over arcs with spare capacity, filling parent
// pointers, and reports whether t was reached.
func (r *residualGraph) augmentingPath(s, t int, parentNode, parentArc []int) bool {
	for i := range parentNode {
		parentNode[i] = -1
	}
	parentNode[s] = s
	queue := []int{s}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for i := range r.arcs[u] {
			a := &r.arcs[u][i]
			if parentNode[a.to] >= 0 || a.residual() <= flowEpsilon {
				continue
			}
			parentNode[a.to] = u
			parentArc[a.to] = i
			if a.to == t {
				return true
			}
			queue = append(queue, a.to)
		}
	}
	return false
}

// reachable marks nodes reachable from s over arcs with spare capacity.
func (r *residualGraph) reachable(s int) []bool {
	seen := make([]bool, len(r.arcs))
	seen[s] = true
	queue := []int{s}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for i := range r.arcs[u] {
			a := &r.arcs[u][i]
			if !seen[a.to] && a.residual() > flowEpsilon {
				seen[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}
	return seen
}
