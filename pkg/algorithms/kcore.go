package algorithms

import "github.com/dd0wney/cluso-graphanalytics/pkg/graph"

// CoreNumbers peels the direction-free simple view: at threshold k every
// node with remaining degree below k is stripped and assigned core number
// k-1; stripping repeats at the same k until nothing qualifies, then k rises.
func CoreNumbers(g *graph.Graph) map[string]int {
	d := newDense(g)
	n := d.n()
	degree := make([]int, n)
	for i := range degree {
		degree[i] = len(d.und[i])
	}
	removed := make([]bool, n)
	core := make([]int, n)

	remaining := n
	k := 0
	batch := make([]int, 0, n)
	for remaining > 0 {
		batch = batch[:0]
		for i := 0; i < n; i++ {
			if !removed[i] && degree[i] < k {
				batch = append(batch, i)
			}
		}
		if len(batch) == 0 {
			k++
			continue
		}
		for _, i := range batch {
			removed[i] = true
			core[i] = k - 1
			remaining--
		}
		for _, i := range batch {
			for _, j := range d.und[i] {
				if !removed[j] {
					degree[j]--
				}
			}
		}
	}

	return indexInts(d.ids, core)
}

// KCore returns the core number of every node whose core number is at least k.
func KCore(g *graph.Graph, k int) (map[string]int, error) {
	out := make(map[string]int)
	for id, c := range CoreNumbers(g) {
		if c >= k {
			out[id] = c
		}
	}
	return out, nil
}

func indexInts(ids []string, values []int) map[string]int {
	out := make(map[string]int, len(ids))
	for i, id := range ids {
		out[id] = values[i]
	}
	return out
}
