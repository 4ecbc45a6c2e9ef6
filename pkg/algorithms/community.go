package algorithms

import (
	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
)

// GreedyModularity performs single-level local moving: every node starts in
// its own community and, visiting nodes in load order, moves to the
// neighboring community with the best strictly positive gain, where gain is
// the number of neighbors already in the target minus the number in the
// node's current community. Passes repeat until one makes no move.
//
// Each move strictly increases the number of intra-community neighbor pairs,
// so the loop terminates.
func GreedyModularity(g *graph.Graph) ([]Community, error) {
	d := newDense(g)
	n := d.n()
	comm := make([]int, n)
	for i := range comm {
		comm[i] = i
	}

	counts := make(map[int]int)
	candidates := make([]int, 0)
	for moved := true; moved; {
		moved = false
		for i := 0; i < n; i++ {
			clear(counts)
			candidates = candidates[:0]
			for _, j := range d.und[i] {
				c := comm[j]
				if counts[c] == 0 && c != comm[i] {
					candidates = append(candidates, c)
				}
				counts[c]++
			}

			current := counts[comm[i]]
			best, bestGain := -1, 0
			for _, c := range candidates {
				if gain := counts[c] - current; gain > bestGain {
					best, bestGain = c, gain
				}
			}
			if best >= 0 {
				comm[i] = best
				moved = true
			}
		}
	}

	return describePartition(g, d, comm), nil
}

// partitionStats holds the raw counts behind a community's quality measures.
type partitionStats struct {
	internal int
	external int
	volume   int
}

// describePartition converts a membership vector into Communities ordered by
// their first member's load position, filling modularity, internal and
// external edge counts and conductance. Edges are treated as undirected.
func describePartition(g *graph.Graph, d *dense, membership []int) []Community {
	relabel := make(map[int]int)
	var communities []Community
	for i, label := range membership {
		idx, ok := relabel[label]
		if !ok {
			idx = len(communities)
			relabel[label] = idx
			communities = append(communities, Community{ID: idx})
		}
		communities[idx].Nodes = append(communities[idx].Nodes, d.ids[i])
	}

	stats := make([]partitionStats, len(communities))
	m := 0
	for _, e := range g.Edges() {
		cu := relabel[membership[g.Index(e.Source)]]
		cv := relabel[membership[g.Index(e.Target)]]
		m++
		stats[cu].volume++
		stats[cv].volume++
		if cu == cv {
			stats[cu].internal++
		} else {
			stats[cu].external++
			stats[cv].external++
		}
	}

	totalVolume := 2 * m
	for i := range communities {
		s := stats[i]
		communities[i].InternalEdges = s.internal
		communities[i].ExternalEdges = s.external
		if m > 0 {
			share := float64(s.volume) / float64(totalVolume)
			communities[i].Modularity = float64(s.internal)/float64(m) - share*share
		}
		if denom := min(s.volume, totalVolume-s.volume); denom > 0 {
			communities[i].Conductance = float64(s.external) / float64(denom)
		}
	}
	return communities
}

// Modularity sums the per-community contributions of a partition.
func Modularity(communities []Community) float64 {
	q := 0.0
	for _, c := range communities {
		q += c.Modularity
	}
	return q
}

// Membership maps each node to the ID of the community containing it.
func Membership(communities []Community) map[string]int {
	out := make(map[string]int)
	for _, c := range communities {
		for _, id := range c.Nodes {
			out[id] = c.ID
		}
	}
	return out
}
