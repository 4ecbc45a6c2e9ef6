package algorithms

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestDegreeCentrality_EmptyGraph tests degree centrality on empty graph
func TestDegreeCentrality_EmptyGraph(t *testing.T) {
	g := setupTestGraph(t, false, nil)

	result, err := DegreeCentrality(g)
	if err != nil {
		t.Fatalf("DegreeCentrality failed: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Expected 0 scores for empty graph, got %d", len(result))
	}
}

func TestDegreeCentrality_SingleNode(t *testing.T) {
	g := setupTestGraph(t, false, []string{"solo"})

	result, _ := DegreeCentrality(g)
	if result["solo"] != 0 {
		t.Errorf("Expected degree 0 for single node, got %f", result["solo"])
	}
}

func TestDegreeCentrality_CompleteGraph(t *testing.T) {
	g := setupCompleteGraph(t, 6)

	result, err := DegreeCentrality(g)
	if err != nil {
		t.Fatalf("DegreeCentrality failed: %v", err)
	}
	for id, score := range result {
		if !approxEqual(score, 1.0) {
			t.Errorf("Expected degree centrality 1 for %s in K6, got %f", id, score)
		}
	}
}

func TestDegreeCentrality_DirectedUsesOutDegree(t *testing.T) {
	g := setupTestGraph(t, true, []string{"a", "b", "c"}, e("a", "b"), e("a", "c"))

	result, _ := DegreeCentrality(g)
	if !approxEqual(result["a"], 1.0) {
		t.Errorf("Expected 1.0 for a, got %f", result["a"])
	}
	if result["b"] != 0 {
		t.Errorf("Expected 0 for sink b, got %f", result["b"])
	}
}

// TestDegreeCentrality_Bounds checks scores stay in [0,1] on simple graphs.
func TestDegreeCentrality_Bounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("degree centrality within [0,1]", prop.ForAll(
		func(n, m int, seed uint64, directed bool) bool {
			g := setupRandomGraph(t, n, m, directed, seed)
			scores, err := DegreeCentrality(g)
			if err != nil {
				return false
			}
			for _, s := range scores {
				if s < 0 || s > 1 {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 20),
		gen.IntRange(0, 60),
		gen.UInt64(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestBetweennessCentrality_Triangle(t *testing.T) {
	g := setupCompleteGraph(t, 3)

	result, err := BetweennessCentrality(g)
	if err != nil {
		t.Fatalf("BetweennessCentrality failed: %v", err)
	}
	for id, score := range result {
		if score != 0 {
			t.Errorf("Expected betweenness 0 for %s in triangle, got %f", id, score)
		}
	}
}

func TestBetweennessCentrality_UndirectedPath(t *testing.T) {
	g := setupPathGraph(t, 3, false)

	result, _ := BetweennessCentrality(g)
	if !approxEqual(result["p1"], 1.0) {
		t.Errorf("Expected middle node betweenness 1.0, got %f", result["p1"])
	}
	if result["p0"] != 0 || result["p2"] != 0 {
		t.Errorf("Expected endpoints 0, got %f and %f", result["p0"], result["p2"])
	}
}

func TestBetweennessCentrality_DirectedPath(t *testing.T) {
	g := setupPathGraph(t, 3, true)

	result, _ := BetweennessCentrality(g)
	// One ordered pair (p0,p2) of (n-1)(n-2)=2 passes through p1
	if !approxEqual(result["p1"], 0.5) {
		t.Errorf("Expected middle node betweenness 0.5, got %f", result["p1"])
	}
}

func TestBetweennessCentrality_StarCenterIsOne(t *testing.T) {
	g := setupStarGraph(t, 6)

	result, _ := BetweennessCentrality(g)
	if !approxEqual(result["hub"], 1.0) {
		t.Errorf("Expected star center betweenness 1.0, got %f", result["hub"])
	}
	for id, s := range result {
		if id != "hub" && s != 0 {
			t.Errorf("Expected leaf %s betweenness 0, got %f", id, s)
		}
	}
}

func TestBetweennessCentrality_ParallelMatchesSequential(t *testing.T) {
	g := setupRandomGraph(t, 80, 240, false, 7)

	sequential, err := BetweennessCentrality(g)
	if err != nil {
		t.Fatalf("sequential BetweennessCentrality failed: %v", err)
	}
	parallelScores, err := BetweennessCentrality(g, WithWorkers(4), WithParallelThreshold(1))
	if err != nil {
		t.Fatalf("parallel BetweennessCentrality failed: %v", err)
	}
	for id, s := range sequential {
		if math.Abs(s-parallelScores[id]) > 1e-9 {
			t.Errorf("Node %s: sequential %f vs parallel %f", id, s, parallelScores[id])
		}
	}
}

func TestEdgeBetweennessCentrality_Path(t *testing.T) {
	g := setupTestGraph(t, false, []string{"a", "b", "c"},
		testEdge{from: "a", to: "b", id: "ab"},
		testEdge{from: "b", to: "c", id: "bc"},
	)

	result, err := EdgeBetweennessCentrality(g)
	if err != nil {
		t.Fatalf("EdgeBetweennessCentrality failed: %v", err)
	}
	// Each edge carries 2 of the 3 unordered pairs, normalised by n(n-1)=6
	for _, id := range []string{"ab", "bc"} {
		if !approxEqual(result[id], 1.0/3.0) {
			t.Errorf("Expected edge %s betweenness 1/3, got %f", id, result[id])
		}
	}
}

func TestClosenessCentrality_Star(t *testing.T) {
	n := 5
	g := setupStarGraph(t, n)

	result, err := ClosenessCentrality(g)
	if err != nil {
		t.Fatalf("ClosenessCentrality failed: %v", err)
	}
	if !approxEqual(result["hub"], 1.0) {
		t.Errorf("Expected center closeness 1.0, got %f", result["hub"])
	}
	want := float64(n-1) / float64(2*n-3)
	if !approxEqual(result["leaf0"], want) {
		t.Errorf("Expected leaf closeness %f, got %f", want, result["leaf0"])
	}
}

func TestClosenessCentrality_IsolatedNode(t *testing.T) {
	g := setupTestGraph(t, false, []string{"a", "b", "lonely"}, e("a", "b"))

	result, _ := ClosenessCentrality(g)
	if result["lonely"] != 0 {
		t.Errorf("Expected isolated closeness 0, got %f", result["lonely"])
	}
	if !approxEqual(result["a"], 1.0) {
		t.Errorf("Expected closeness 1.0 for a, got %f", result["a"])
	}
}

func TestHarmonicCentrality_Path(t *testing.T) {
	g := setupPathGraph(t, 3, false)

	result, err := HarmonicCentrality(g)
	if err != nil {
		t.Fatalf("HarmonicCentrality failed: %v", err)
	}
	if !approxEqual(result["p0"], 1.5) {
		t.Errorf("Expected harmonic 1.5 for endpoint, got %f", result["p0"])
	}
	if !approxEqual(result["p1"], 2.0) {
		t.Errorf("Expected harmonic 2.0 for middle, got %f", result["p1"])
	}
}

func TestEigenvectorCentrality_Triangle(t *testing.T) {
	g := setupCompleteGraph(t, 3)

	result, err := EigenvectorCentrality(g)
	if err != nil {
		t.Fatalf("EigenvectorCentrality failed: %v", err)
	}
	if !result.Converged {
		t.Error("Expected convergence on a triangle")
	}
	want := 1 / math.Sqrt(3)
	for id, s := range result.Scores {
		if !approxEqual(s, want) {
			t.Errorf("Expected %f for %s, got %f", want, id, s)
		}
	}
}

func TestEigenvectorCentrality_EdgelessGraph(t *testing.T) {
	g := setupTestGraph(t, false, []string{"a", "b"})

	result, _ := EigenvectorCentrality(g)
	for id, s := range result.Scores {
		if s != 0 {
			t.Errorf("Expected 0 for %s in edgeless graph, got %f", id, s)
		}
	}
}

func TestEigenvectorCentrality_IterationCap(t *testing.T) {
	g := setupRandomGraph(t, 30, 60, false, 11)

	result, _ := EigenvectorCentrality(g, WithMaxIterations(3), WithTolerance(1e-300))
	if result.Iterations > 3 {
		t.Errorf("Expected at most 3 iterations, got %d", result.Iterations)
	}
}

func TestKatzCentrality_FixedPoint(t *testing.T) {
	g := setupPathGraph(t, 2, false)

	result, err := KatzCentrality(g, 0.1)
	if err != nil {
		t.Fatalf("KatzCentrality failed: %v", err)
	}
	want := 1 / 0.9
	for id, s := range result.Scores {
		if math.Abs(s-want) > 1e-5 {
			t.Errorf("Expected %f for %s, got %f", want, id, s)
		}
	}
	if !result.Converged {
		t.Error("Expected Katz to converge")
	}
}

func TestPageRank_CycleIsUniform(t *testing.T) {
	g := setupTestGraph(t, true, []string{"a", "b", "c"}, e("a", "b"), e("b", "c"), e("c", "a"))

	result, err := PageRank(g, DefaultPageRankOptions())
	if err != nil {
		t.Fatalf("PageRank failed: %v", err)
	}
	for id, s := range result.Scores {
		if !approxEqual(s, 1.0/3.0) {
			t.Errorf("Expected 1/3 for %s, got %f", id, s)
		}
	}
	if !result.Converged {
		t.Error("Expected convergence")
	}
	if len(result.TopNodes) != 3 {
		t.Errorf("Expected 3 top nodes, got %d", len(result.TopNodes))
	}
}

func TestPageRank_StarCenterRanksHighest(t *testing.T) {
	g := setupStarGraph(t, 6)

	result, _ := PageRank(g, DefaultPageRankOptions())
	if result.TopNodes[0].NodeID != "hub" {
		t.Errorf("Expected hub to rank first, got %s", result.TopNodes[0].NodeID)
	}
	for id, s := range result.Scores {
		if id != "hub" && s >= result.Scores["hub"] {
			t.Errorf("Leaf %s score %f should be below hub %f", id, s, result.Scores["hub"])
		}
	}
}

func TestPageRank_EmptyGraph(t *testing.T) {
	g := setupTestGraph(t, true, nil)

	result, err := PageRank(g, DefaultPageRankOptions())
	if err != nil {
		t.Fatalf("PageRank failed: %v", err)
	}
	if len(result.Scores) != 0 || !result.Converged {
		t.Errorf("Expected empty converged result, got %+v", result)
	}
}
