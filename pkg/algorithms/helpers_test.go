package algorithms

import (
	"fmt"
	"math"
	"testing"

	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
)

// testEdge is a compact edge literal: empty ID means "from-to".
type testEdge struct {
	from, to string
	weight   float64
	id       string
}

func e(from, to string) testEdge { return testEdge{from: from, to: to} }

func we(from, to string, w float64) testEdge { return testEdge{from: from, to: to, weight: w} }

// setupTestGraph builds a graph from node IDs and edge literals.
func setupTestGraph(t *testing.T, directed bool, nodes []string, edges ...testEdge) *graph.Graph {
	t.Helper()

	records := make([]graph.Node, len(nodes))
	for i, id := range nodes {
		records[i] = graph.Node{ID: id}
	}
	edgeRecords := make([]graph.Edge, len(edges))
	for i, te := range edges {
		id := te.id
		if id == "" {
			id = fmt.Sprintf("%s-%s-%d", te.from, te.to, i)
		}
		edgeRecords[i] = graph.Edge{ID: id, Source: te.from, Target: te.to, Weight: te.weight}
	}

	g, err := graph.Build(records, edgeRecords, directed)
	if err != nil {
		t.Fatalf("Failed to build test graph: %v", err)
	}
	return g
}

func ids(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return out
}

// setupCompleteGraph builds K_n.
func setupCompleteGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	nodes := ids("k", n)
	var edges []testEdge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, e(nodes[i], nodes[j]))
		}
	}
	return setupTestGraph(t, false, nodes, edges...)
}

// setupStarGraph builds an undirected star with center "hub" and n-1 leaves.
func setupStarGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	nodes := append([]string{"hub"}, ids("leaf", n-1)...)
	var edges []testEdge
	for _, leaf := range nodes[1:] {
		edges = append(edges, e("hub", leaf))
	}
	return setupTestGraph(t, false, nodes, edges...)
}

// setupPathGraph builds p0 - p1 - ... - p(n-1).
func setupPathGraph(t *testing.T, n int, directed bool) *graph.Graph {
	t.Helper()
	nodes := ids("p", n)
	var edges []testEdge
	for i := 0; i+1 < n; i++ {
		edges = append(edges, e(nodes[i], nodes[i+1]))
	}
	return setupTestGraph(t, directed, nodes, edges...)
}

// setupTwoTriangles builds two triangles, optionally joined by a bridge c-d.
func setupTwoTriangles(t *testing.T, bridged bool) *graph.Graph {
	t.Helper()
	edges := []testEdge{
		e("a", "b"), e("b", "c"), e("c", "a"),
		e("d", "e"), e("e", "f"), e("f", "d"),
	}
	if bridged {
		edges = append(edges, testEdge{from: "c", to: "d", id: "bridge"})
	}
	return setupTestGraph(t, false, []string{"a", "b", "c", "d", "e", "f"}, edges...)
}

// setupRandomGraph builds a simple graph from a seeded linear congruential
// sequence so tests stay deterministic.
func setupRandomGraph(t *testing.T, n, m int, directed bool, seed uint64) *graph.Graph {
	t.Helper()
	nodes := ids("r", n)
	state := seed
	next := func() int {
		state = state*6364136223846793005 + 1442695040888963407
		return int((state >> 33) % uint64(n))
	}
	seen := make(map[[2]int]bool)
	var edges []testEdge
	for attempts := 0; len(edges) < m && attempts < m*20; attempts++ {
		u, v := next(), next()
		if u == v {
			continue
		}
		key := [2]int{u, v}
		if !directed && u > v {
			key = [2]int{v, u}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, e(nodes[u], nodes[v]))
	}
	return setupTestGraph(t, directed, nodes, edges...)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
