package graph

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodesOf(ids ...string) []Node {
	nodes := make([]Node, len(ids))
	for i, id := range ids {
		nodes[i] = Node{ID: id}
	}
	return nodes
}

func TestBuild_UndirectedAdjacencyIsSymmetric(t *testing.T) {
	g, err := Build(nodesOf("a", "b", "c"), []Edge{
		{ID: "ab", Source: "a", Target: "b"},
		{ID: "bc", Source: "b", Target: "c"},
	}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, g.Neighbors("a"))
	assert.Equal(t, []string{"a", "c"}, g.Neighbors("b"))
	assert.Equal(t, []string{"b"}, g.Neighbors("c"))
	assert.ElementsMatch(t, []string{"a", "c"}, g.Predecessors("b"))
	assert.True(t, g.HasEdge("b", "a"))
	assert.False(t, g.Directed())
}

func TestBuild_DirectedKeepsOrientation(t *testing.T) {
	g, err := Build(nodesOf("a", "b"), []Edge{{ID: "ab", Source: "a", Target: "b"}}, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, g.Neighbors("a"))
	assert.Empty(t, g.Neighbors("b"))
	assert.Equal(t, []string{"a"}, g.Predecessors("b"))
	assert.False(t, g.HasEdge("b", "a"))
}

func TestBuild_DanglingEdgeReference(t *testing.T) {
	_, err := Build(nodesOf("a"), []Edge{{ID: "ax", Source: "a", Target: "x"}}, false)
	require.Error(t, err)
	assert.True(t, IsDanglingEdge(err))
	assert.ErrorIs(t, err, ErrDanglingEdge)

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, "ax", gerr.ID)
	assert.Equal(t, "target", gerr.Field)
}

func TestBuild_DanglingSource(t *testing.T) {
	_, err := Build(nodesOf("a"), []Edge{{ID: "xa", Source: "x", Target: "a"}}, true)
	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, "source", gerr.Field)
}

func TestBuild_InvalidRecords(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node
		edges []Edge
	}{
		{"empty node id", []Node{{ID: ""}}, nil},
		{"missing target", nodesOf("a"), []Edge{{ID: "e", Source: "a"}}},
		{"nan weight", nodesOf("a", "b"), []Edge{{ID: "e", Source: "a", Target: "b", Weight: math.NaN()}}},
		{"infinite weight", nodesOf("a", "b"), []Edge{{ID: "e", Source: "a", Target: "b", Weight: math.Inf(1)}}},
		{"duplicate edge id", nodesOf("a", "b"), []Edge{
			{ID: "e", Source: "a", Target: "b"},
			{ID: "e", Source: "b", Target: "a"},
		}},
		{"empty attribute key", []Node{{ID: "a", Attributes: map[string]string{"": "x"}}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.nodes, tt.edges, true)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRecord)
			assert.False(t, IsDanglingEdge(err))
		})
	}
}

func TestBuild_DefaultsWeightAndID(t *testing.T) {
	g, err := Build(nodesOf("a", "b", "c"), []Edge{
		{Source: "a", Target: "b"},
		{ID: "bc", Source: "b", Target: "c", Weight: 2.5},
	}, true)
	require.NoError(t, err)

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.NotEmpty(t, edges[0].ID)
	assert.Equal(t, DefaultWeight, edges[0].Weight)
	assert.Equal(t, 2.5, edges[1].Weight)
	assert.True(t, g.Weighted())
}

func TestBuild_DuplicateNodeKeepsFirstPosition(t *testing.T) {
	g, err := Build([]Node{{ID: "a", Label: "first"}, {ID: "b"}, {ID: "a", Label: "second"}}, nil, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, g.NodeIDs())
	n, ok := g.Node("a")
	require.True(t, ok)
	assert.Equal(t, "second", n.Label)
	assert.Equal(t, 0, g.Index("a"))
	assert.Equal(t, -1, g.Index("zzz"))
}

func TestBuild_MultiEdgesAndSelfLoops(t *testing.T) {
	g, err := Build(nodesOf("a", "b"), []Edge{
		{ID: "e1", Source: "a", Target: "b", Weight: 3},
		{ID: "e2", Source: "a", Target: "b", Weight: 2},
		{ID: "loop", Source: "a", Target: "a"},
	}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "b", "a", "a"}, g.Neighbors("a"))
	assert.Equal(t, []string{"b"}, g.UndirectedNeighbors("a"))
	assert.Equal(t, []string{"b"}, g.SimpleNeighbors("a"))
	assert.Len(t, g.EdgesBetween("a", "b"), 2)

	w, e, ok := g.MinWeight("a", "b")
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	assert.Equal(t, "e2", e.ID)

	_, _, ok = g.MinWeight("b", "x")
	assert.False(t, ok)
}

func TestUndirectedNeighbors_DirectedUnion(t *testing.T) {
	g, err := Build(nodesOf("a", "b", "c"), []Edge{
		{ID: "ab", Source: "a", Target: "b"},
		{ID: "ca", Source: "c", Target: "a"},
		{ID: "ba", Source: "b", Target: "a"},
	}, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c"}, g.UndirectedNeighbors("a"))
}

func TestPropertyCache_Degrees(t *testing.T) {
	g, err := Build(nodesOf("a", "b", "c"), []Edge{
		{ID: "ab", Source: "a", Target: "b"},
		{ID: "ac", Source: "a", Target: "c"},
		{ID: "cb", Source: "c", Target: "b"},
	}, true)
	require.NoError(t, err)
	pc := NewPropertyCache(g)

	a, ok := pc.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, a.Degree)
	assert.Equal(t, 2, a.OutDegree)
	assert.Equal(t, 0, a.InDegree)

	b, _ := pc.Get("b")
	assert.Equal(t, 0, b.Degree)
	assert.Equal(t, 2, b.InDegree)

	assert.Equal(t, 3, pc.Len())
	assert.Equal(t, 0, pc.Degree("missing"))
	_, ok = pc.Get("missing")
	assert.False(t, ok)
}

func TestPropertyCache_UndirectedDegreeCountsIncidentEdges(t *testing.T) {
	g, err := Build(nodesOf("hub", "x", "y"), []Edge{
		{ID: "1", Source: "hub", Target: "x"},
		{ID: "2", Source: "y", Target: "hub"},
	}, false)
	require.NoError(t, err)
	pc := NewPropertyCache(g)

	assert.Equal(t, 2, pc.Degree("hub"))
	hub, _ := pc.Get("hub")
	assert.Equal(t, 2, hub.InDegree)
}

func TestPropertyCache_AnnotateScratchSlots(t *testing.T) {
	g, err := Build(nodesOf("a", "b"), nil, false)
	require.NoError(t, err)
	pc := NewPropertyCache(g)

	pc.Annotate(SlotPageRank, map[string]float64{"a": 0.4, "ghost": 1})
	pc.Annotate(SlotBetweenness, map[string]float64{"b": 0.25})
	pc.SetCommunities(map[string]int{"a": 3})

	a, _ := pc.Get("a")
	require.NotNil(t, a.PageRank)
	assert.Equal(t, 0.4, *a.PageRank)
	require.NotNil(t, a.Community)
	assert.Equal(t, 3, *a.Community)
	assert.Nil(t, a.Betweenness)

	b, _ := pc.Get("b")
	require.NotNil(t, b.Betweenness)
	assert.Equal(t, 0.25, *b.Betweenness)
}
