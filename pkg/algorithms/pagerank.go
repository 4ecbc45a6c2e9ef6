package algorithms

import (
	"container/heap"
	"math"

	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
)

// PageRankOptions configures PageRank algorithm
type PageRankOptions struct {
	DampingFactor float64 // Usually 0.85
	MaxIterations int
	Tolerance     float64 // Convergence threshold on the L1 change
}

// DefaultPageRankOptions returns default PageRank configuration
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		DampingFactor: DefaultDamping,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// PageRankResult contains PageRank scores for all nodes
type PageRankResult struct {
	IterativeResult
	TopNodes []RankedNode // Top N nodes by score
}

// RankedNode represents a node with its rank
type RankedNode struct {
	NodeID string
	Score  float64
}

// PageRank computes rank(v) = (1-d)/n + d * sum over u->v of rank(u)/outdeg(u).
// Mass held by nodes without out-edges is not redistributed.
func PageRank(g *graph.Graph, opts PageRankOptions) (*PageRankResult, error) {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}

	d := newDense(g)
	n := d.n()
	if n == 0 {
		return &PageRankResult{IterativeResult: IterativeResult{Scores: map[string]float64{}, Converged: true}}, nil
	}

	scores := make([]float64, n)
	next := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}
	base := (1.0 - opts.DampingFactor) / float64(n)

	result := &PageRankResult{}
	for result.Iterations < opts.MaxIterations {
		result.Iterations++

		for i := range next {
			next[i] = base
		}
		for u, arcs := range d.arcs {
			if len(arcs) == 0 {
				continue
			}
			share := opts.DampingFactor * scores[u] / float64(len(arcs))
			for _, a := range arcs {
				next[a.to] += share
			}
		}

		delta := 0.0
		for i := range next {
			delta += math.Abs(next[i] - scores[i])
		}
		scores, next = next, scores
		if delta < opts.Tolerance {
			result.Converged = true
			break
		}
	}

	result.Scores = indexScores(d.ids, scores)
	result.TopNodes = findTopNodes(result.Scores, 10)
	return result, nil
}

// rankedNodeHeap implements a min-heap for RankedNode by score.
type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].NodeID > h[j].NodeID
}
func (h rankedNodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *rankedNodeHeap) Push(x any)   { *h = append(*h, x.(RankedNode)) }
func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// findTopNodes returns the top n nodes by score, highest first. Equal scores
// order by node ID.
func findTopNodes(scores map[string]float64, n int) []RankedNode {
	if n <= 0 {
		return nil
	}
	h := &rankedNodeHeap{}
	heap.Init(h)
	for id, score := range scores {
		candidate := RankedNode{NodeID: id, Score: score}
		if h.Len() < n {
			heap.Push(h, candidate)
			continue
		}
		if (*h)[0].Score < score || ((*h)[0].Score == score && id < (*h)[0].NodeID) {
			heap.Pop(h)
			heap.Push(h, candidate)
		}
	}

	result := make([]RankedNode, h.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(h).(RankedNode)
	}
	return result
}
