package algorithms

import (
	"sort"

	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
)

// SpanningForest is the result of Kruskal's algorithm.
type SpanningForest struct {
	EdgeIDs     []string
	TotalWeight float64
}

// disjointSet is union-find with path compression and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

func (ds *disjointSet) find(x int) int {
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[x] != root {
		ds.parent[x], x = root, ds.parent[x]
	}
	return root
}

// union merges the sets of a and b and reports whether they were distinct.
func (ds *disjointSet) union(a, b int) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
	return true
}

// MinimumSpanningForest runs Kruskal over all edges ignoring direction: edges
// are taken in ascending weight (load order on ties) and kept unless they
// close a cycle.
func MinimumSpanningForest(g *graph.Graph) *SpanningForest {
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	ds := newDisjointSet(g.NodeCount())
	forest := &SpanningForest{}
	limit := g.NodeCount() - 1
	for _, e := range edges {
		if len(forest.EdgeIDs) >= limit {
			break
		}
		if ds.union(g.Index(e.Source), g.Index(e.Target)) {
			forest.EdgeIDs = append(forest.EdgeIDs, e.ID)
			forest.TotalWeight += e.Weight
		}
	}
	return forest
}

// MinimumSpanningTree scores every edge 1.0 if Kruskal selected it and 0.0
// otherwise.
func MinimumSpanningTree(g *graph.Graph) (map[string]float64, *SpanningForest, error) {
	forest := MinimumSpanningForest(g)
	scores := make(map[string]float64, g.EdgeCount())
	for _, id := range g.EdgeIDs() {
		scores[id] = 0
	}
	for _, id := range forest.EdgeIDs {
		scores[id] = 1
	}
	return scores, forest, nil
}
