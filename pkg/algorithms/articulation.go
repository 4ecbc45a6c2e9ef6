package algorithms

import "github.com/dd0wney/cluso-graphanalytics/pkg/graph"

// CutStructure is the result of one articulation-point/bridge DFS.
type CutStructure struct {
	ArticulationPoints map[string]bool
	Bridges            map[string]bool
}

type cutFrame struct {
	node       int
	parentEdge int
	cursor     int
}

// FindCutStructure runs a single iterative DFS over the direction-free
// incident-edge view, tracking discovery time and low-link. The parent edge
// is skipped by edge identity, so a parallel edge back to the parent counts
// as a back edge. The root is an articulation point iff it has at least two
// DFS children; any other u iff some child v has low[v] >= disc[u]. A tree
// edge (u,v) is a bridge iff low[v] > disc[u].
func FindCutStructure(g *graph.Graph) *CutStructure {
	ids := g.NodeIDs()
	edgeIDs := g.EdgeIDs()
	n := len(ids)

	adj := make([][]arc, n)
	for j, e := range g.Edges() {
		u, v := g.Index(e.Source), g.Index(e.Target)
		if u == v {
			continue
		}
		adj[u] = append(adj[u], arc{to: v, edge: j})
		adj[v] = append(adj[v], arc{to: u, edge: j})
	}

	disc := make([]int, n)
	low := make([]int, n)
	for i := range disc {
		disc[i] = -1
	}
	isCut := make([]bool, n)
	isBridge := make([]bool, len(edgeIDs))

	timer := 0
	var work []cutFrame
	for root := 0; root < n; root++ {
		if disc[root] >= 0 {
			continue
		}
		disc[root], low[root] = timer, timer
		timer++
		rootChildren := 0
		work = append(work[:0], cutFrame{node: root, parentEdge: -1})

		for len(work) > 0 {
			top := &work[len(work)-1]
			u := top.node

			if top.cursor < len(adj[u]) {
				a := adj[u][top.cursor]
				top.cursor++
				if a.edge == top.parentEdge {
					continue
				}
				if disc[a.to] < 0 {
					disc[a.to], low[a.to] = timer, timer
					timer++
					if u == root {
						rootChildren++
					}
					work = append(work, cutFrame{node: a.to, parentEdge: a.edge})
				} else {
					low[u] = min(low[u], disc[a.to])
				}
				continue
			}

			parentEdge := top.parentEdge
			work = work[:len(work)-1]
			if len(work) == 0 {
				continue
			}
			p := work[len(work)-1].node
			low[p] = min(low[p], low[u])
			if low[u] > disc[p] {
				isBridge[parentEdge] = true
			}
			if p != root && low[u] >= disc[p] {
				isCut[p] = true
			}
		}

		if rootChildren >= 2 {
			isCut[root] = true
		}
	}

	result := &CutStructure{
		ArticulationPoints: make(map[string]bool, n),
		Bridges:            make(map[string]bool, len(edgeIDs)),
	}
	for i, id := range ids {
		result.ArticulationPoints[id] = isCut[i]
	}
	for j, id := range edgeIDs {
		result.Bridges[id] = isBridge[j]
	}
	return result
}

// ArticulationPoints scores every node 1.0 if removing it disconnects its
// component and 0.0 otherwise.
func ArticulationPoints(g *graph.Graph) (map[string]float64, error) {
	return indicatorScores(FindCutStructure(g).ArticulationPoints), nil
}

// Bridges scores every edge 1.0 if removing it disconnects its component and
// 0.0 otherwise.
func Bridges(g *graph.Graph) (map[string]float64, error) {
	return indicatorScores(FindCutStructure(g).Bridges), nil
}

func indicatorScores(flags map[string]bool) map[string]float64 {
	out := make(map[string]float64, len(flags))
	for id, on := range flags {
		if on {
			out[id] = 1
		} else {
			out[id] = 0
		}
	}
	return out
}
