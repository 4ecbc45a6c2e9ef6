package algorithms

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
)

// ErrInvalidCommunityCount is returned when fewer than one community is requested.
var ErrInvalidCommunityCount = errors.New("community count must be at least 1")

// OrderBisection splits the nodes into two halves by load order: the first
// floor(n/2) nodes and the rest. It is a placeholder partition that always
// succeeds.
func OrderBisection(g *graph.Graph) ([]Community, error) {
	d := newDense(g)
	n := d.n()
	membership := make([]int, n)
	for i := n / 2; i < n; i++ {
		membership[i] = 1
	}
	return describePartition(g, d, membership), nil
}

// OrderSlices splits the nodes into min(k, n) contiguous load-order slices
// whose sizes differ by at most one. It is a placeholder partition.
func OrderSlices(g *graph.Graph, k int) ([]Community, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCommunityCount, k)
	}
	d := newDense(g)
	n := d.n()
	k = min(k, n)
	membership := make([]int, n)
	if k > 0 {
		base, extra := n/k, n%k
		i := 0
		for c := 0; c < k; c++ {
			size := base
			if c < extra {
				size++
			}
			for j := 0; j < size; j++ {
				membership[i] = c
				i++
			}
		}
	}
	return describePartition(g, d, membership), nil
}

// EdgeBetweennessClustering is Girvan-Newman divisive clustering on the
// undirected simple view: the edge with the highest betweenness is removed
// (lowest pair index on ties) and betweenness recomputed until the graph splits
// into at least k components or runs out of edges.
func EdgeBetweennessClustering(g *graph.Graph, k int, opts ...Option) ([]Community, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCommunityCount, k)
	}
	o := applyOptions(opts)
	d := newDense(g)
	n := d.n()

	type pair struct{ u, v int }
	var pairs []pair
	for u := 0; u < n; u++ {
		for _, v := range d.und[u] {
			if u < v {
				pairs = append(pairs, pair{u, v})
			}
		}
	}
	alive := make([]bool, len(pairs))
	for i := range alive {
		alive[i] = true
	}

	working := &dense{ids: d.ids, edgeIDs: make([]string, len(pairs)), arcs: make([][]arc, n)}
	rebuild := func() {
		for u := range working.arcs {
			working.arcs[u] = working.arcs[u][:0]
		}
		for j, p := range pairs {
			if alive[j] {
				working.arcs[p.u] = append(working.arcs[p.u], arc{to: p.v, edge: j})
				working.arcs[p.v] = append(working.arcs[p.v], arc{to: p.u, edge: j})
			}
		}
	}

	remaining := len(pairs)
	for {
		rebuild()
		membership, count := arcComponents(working)
		if count >= k || remaining == 0 {
			return describePartition(g, d, membership), nil
		}

		_, edgeRaw, err := brandes(working, o)
		if err != nil {
			return nil, err
		}
		best := -1
		for j := range pairs {
			if alive[j] && (best < 0 || edgeRaw[j] > edgeRaw[best]) {
				best = j
			}
		}
		alive[best] = false
		remaining--
	}
}

// arcComponents labels the weakly connected components of d's arcs.
func arcComponents(d *dense) ([]int, int) {
	n := d.n()
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}
	count := 0
	stack := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if label[s] >= 0 {
			continue
		}
		label[s] = count
		stack = append(stack[:0], s)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, a := range d.arcs[v] {
				if label[a.to] < 0 {
					label[a.to] = count
					stack = append(stack, a.to)
				}
			}
		}
		count++
	}
	return label, count
}
