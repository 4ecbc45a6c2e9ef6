package algorithms

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestUnweightedDistances(t *testing.T) {
	g := setupTestGraph(t, true, []string{"a", "b", "c", "d"}, e("a", "b"), e("b", "c"), e("d", "a"))

	dist := UnweightedDistances(g, "a")
	want := map[string]int{"a": 0, "b": 1, "c": 2}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("Expected %v, got %v", want, dist)
	}
	if _, ok := dist["d"]; ok {
		t.Error("Unreached node d should be absent")
	}
	if got := UnweightedDistances(g, "missing"); len(got) != 0 {
		t.Errorf("Expected empty map for unknown source, got %v", got)
	}
}

func TestWeightedShortestPath_PrefersLighterRoute(t *testing.T) {
	g := setupTestGraph(t, true, []string{"s", "a", "b", "t"},
		testEdge{from: "s", to: "t", weight: 10, id: "direct"},
		testEdge{from: "s", to: "a", weight: 1, id: "sa"},
		testEdge{from: "a", to: "b", weight: 1, id: "ab"},
		testEdge{from: "b", to: "t", weight: 1, id: "bt"},
	)

	path, err := WeightedShortestPath(g, "s", "t")
	if err != nil {
		t.Fatalf("WeightedShortestPath failed: %v", err)
	}
	if !reflect.DeepEqual(path.Nodes, []string{"s", "a", "b", "t"}) {
		t.Errorf("Expected s-a-b-t, got %v", path.Nodes)
	}
	if !reflect.DeepEqual(path.Edges, []string{"sa", "ab", "bt"}) {
		t.Errorf("Expected edges sa, ab, bt, got %v", path.Edges)
	}
	if path.Weight != 3 || path.Length != 3 {
		t.Errorf("Expected weight 3 length 3, got %f %d", path.Weight, path.Length)
	}
}

func TestWeightedShortestPath_DefaultWeights(t *testing.T) {
	g := setupPathGraph(t, 4, false)

	path, _ := WeightedShortestPath(g, "p3", "p0")
	if path.Weight != 3 {
		t.Errorf("Expected weight 3 with default weights, got %f", path.Weight)
	}
}

func TestWeightedShortestPath_TieBreakByLoadOrder(t *testing.T) {
	g := setupTestGraph(t, true, []string{"s", "x", "y", "t"},
		e("s", "y"), e("s", "x"), e("x", "t"), e("y", "t"),
	)

	path, _ := WeightedShortestPath(g, "s", "t")
	// x loads before y, so it settles first and claims t
	if !reflect.DeepEqual(path.Nodes, []string{"s", "x", "t"}) {
		t.Errorf("Expected s-x-t, got %v", path.Nodes)
	}
}

func TestWeightedShortestPath_Unreachable(t *testing.T) {
	g := setupTestGraph(t, true, []string{"a", "b"}, e("b", "a"))

	path, err := WeightedShortestPath(g, "a", "b")
	if err != nil {
		t.Fatalf("WeightedShortestPath failed: %v", err)
	}
	if !math.IsInf(path.Weight, 1) {
		t.Errorf("Expected +Inf weight, got %f", path.Weight)
	}
	if !reflect.DeepEqual(path.Nodes, []string{"a"}) {
		t.Errorf("Expected single-node path, got %v", path.Nodes)
	}
}

func TestWeightedShortestPath_SameNode(t *testing.T) {
	g := setupPathGraph(t, 2, false)

	path, _ := WeightedShortestPath(g, "p0", "p0")
	if path.Weight != 0 || len(path.Nodes) != 1 {
		t.Errorf("Expected zero-length path, got %+v", path)
	}
}

func TestWeightedShortestPath_UnknownNode(t *testing.T) {
	g := setupPathGraph(t, 2, false)

	if _, err := WeightedShortestPath(g, "p0", "nope"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Expected ErrNodeNotFound, got %v", err)
	}
	if _, err := WeightedShortestPath(g, "nope", "p0"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Expected ErrNodeNotFound, got %v", err)
	}
}

func TestShortestPathTree(t *testing.T) {
	g := setupPathGraph(t, 4, false)

	paths, err := ShortestPathTree(g, "p0")
	if err != nil {
		t.Fatalf("ShortestPathTree failed: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("Expected 3 paths, got %d", len(paths))
	}
	last := paths[2]
	if last.Target != "p3" || last.Length != 3 || last.Weight != 3 {
		t.Errorf("Unexpected path to p3: %+v", last)
	}
	if !reflect.DeepEqual(last.Nodes, []string{"p0", "p1", "p2", "p3"}) {
		t.Errorf("Expected full route, got %v", last.Nodes)
	}
}

func TestAllPairsShortestPaths(t *testing.T) {
	g := setupCompleteGraph(t, 4)

	paths, err := AllPairsShortestPaths(g, WithWorkers(3), WithParallelThreshold(1))
	if err != nil {
		t.Fatalf("AllPairsShortestPaths failed: %v", err)
	}
	if len(paths) != 12 {
		t.Errorf("Expected 12 ordered pairs, got %d", len(paths))
	}
	for _, p := range paths {
		if p.Length != 1 {
			t.Errorf("Expected direct path in K4, got %+v", p)
		}
	}
}

func TestBellmanFord_NegativeEdge(t *testing.T) {
	g := setupTestGraph(t, true, []string{"s", "a", "b"},
		we("s", "a", 4), we("s", "b", 1), we("a", "b", -5),
	)

	paths, err := BellmanFord(g, "s")
	if err != nil {
		t.Fatalf("BellmanFord failed: %v", err)
	}
	byTarget := map[string]Path{}
	for _, p := range paths {
		byTarget[p.Target] = p
	}
	if byTarget["b"].Weight != -1 {
		t.Errorf("Expected weight -1 to b via a, got %f", byTarget["b"].Weight)
	}
	if !reflect.DeepEqual(byTarget["b"].Nodes, []string{"s", "a", "b"}) {
		t.Errorf("Expected route s-a-b, got %v", byTarget["b"].Nodes)
	}
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	g := setupTestGraph(t, true, []string{"s", "a", "b"},
		we("s", "a", 1), we("a", "b", -2), we("b", "a", 1),
	)

	if _, err := BellmanFord(g, "s"); !errors.Is(err, ErrNegativeCycle) {
		t.Errorf("Expected ErrNegativeCycle, got %v", err)
	}
}

func TestNegativeSelfLoop_BothDetectors(t *testing.T) {
	g := setupTestGraph(t, true, []string{"s", "a"},
		we("s", "a", 1), we("a", "a", -1),
	)

	if _, err := BellmanFord(g, "s"); !errors.Is(err, ErrNegativeCycle) {
		t.Errorf("BellmanFord: expected ErrNegativeCycle, got %v", err)
	}
	if _, err := FloydWarshall(g); !errors.Is(err, ErrNegativeCycle) {
		t.Errorf("FloydWarshall: expected ErrNegativeCycle, got %v", err)
	}
}

func TestFloydWarshall_PositiveSelfLoopIgnored(t *testing.T) {
	g := setupTestGraph(t, true, []string{"s", "a"},
		we("s", "a", 1), we("a", "a", 3),
	)

	paths, err := FloydWarshall(g)
	if err != nil {
		t.Fatalf("FloydWarshall failed: %v", err)
	}
	if len(paths) != 1 || paths[0].Weight != 1 {
		t.Errorf("Expected the single path s-a of weight 1, got %+v", paths)
	}
}

func TestFloydWarshall_MatchesDijkstra(t *testing.T) {
	g := setupTestGraph(t, false, []string{"a", "b", "c", "d", "e"},
		we("a", "b", 2), we("b", "c", 2), we("a", "c", 5), we("c", "d", 1), we("d", "e", 3), we("b", "e", 9),
	)

	paths, err := FloydWarshall(g)
	if err != nil {
		t.Fatalf("FloydWarshall failed: %v", err)
	}
	if len(paths) != 20 {
		t.Fatalf("Expected 20 ordered pairs, got %d", len(paths))
	}
	for _, p := range paths {
		dj, _ := WeightedShortestPath(g, p.Source, p.Target)
		if !approxEqual(dj.Weight, p.Weight) {
			t.Errorf("%s->%s: floyd %f vs dijkstra %f", p.Source, p.Target, p.Weight, dj.Weight)
		}
		if p.Nodes[0] != p.Source || p.Nodes[len(p.Nodes)-1] != p.Target {
			t.Errorf("Malformed route %v for %s->%s", p.Nodes, p.Source, p.Target)
		}
		if len(p.Edges) != p.Length {
			t.Errorf("Expected %d edges, got %d", p.Length, len(p.Edges))
		}
	}
}
