package algorithms

import (
	"math"

	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
)

// EigenvectorCentrality runs power iteration from the uniform vector 1/sqrt(n),
// replacing each entry with the sum of its forward neighbors' values and
// L2-normalising. Iteration stops once the L1 change drops below the
// tolerance or the iteration cap is hit. An edgeless graph scores all zeros.
func EigenvectorCentrality(g *graph.Graph, opts ...Option) (*IterativeResult, error) {
	o := applyOptions(opts)
	d := newDense(g)
	n := d.n()
	if n == 0 {
		return &IterativeResult{Scores: map[string]float64{}, Converged: true}, nil
	}

	x := make([]float64, n)
	next := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / math.Sqrt(float64(n))
	}

	result := &IterativeResult{}
	for result.Iterations < o.MaxIterations {
		result.Iterations++
		norm := 0.0
		for i := range next {
			sum := 0.0
			for _, a := range d.arcs[i] {
				sum += x[a.to]
			}
			next[i] = sum
			norm += sum * sum
		}
		if norm == 0 {
			clear(x)
			result.Converged = true
			break
		}
		norm = math.Sqrt(norm)

		delta := 0.0
		for i := range next {
			next[i] /= norm
			delta += math.Abs(next[i] - x[i])
		}
		x, next = next, x
		if delta < o.Tolerance {
			result.Converged = true
			break
		}
	}

	result.Scores = indexScores(d.ids, x)
	return result, nil
}

// KatzCentrality iterates x_i = 1 + alpha * sum over forward neighbors j of
// x_j, starting from all ones, with the same stopping rule as
// EigenvectorCentrality.
func KatzCentrality(g *graph.Graph, alpha float64, opts ...Option) (*IterativeResult, error) {
	o := applyOptions(opts)
	d := newDense(g)
	n := d.n()

	x := make([]float64, n)
	next := make([]float64, n)
	for i := range x {
		x[i] = 1
	}

	result := &IterativeResult{Converged: n == 0}
	for n > 0 && result.Iterations < o.MaxIterations {
		result.Iterations++
		delta := 0.0
		for i := range next {
			sum := 0.0
			for _, a := range d.arcs[i] {
				sum += x[a.to]
			}
			next[i] = 1 + alpha*sum
			delta += math.Abs(next[i] - x[i])
		}
		x, next = next, x
		if delta < o.Tolerance {
			result.Converged = true
			break
		}
	}

	result.Scores = indexScores(d.ids, x)
	return result, nil
}

func indexScores(ids []string, values []float64) map[string]float64 {
	scores := make(map[string]float64, len(ids))
	for i, id := range ids {
		scores[id] = values[i]
	}
	return scores
}
