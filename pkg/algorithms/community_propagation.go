package algorithms

import "github.com/dd0wney/cluso-graphanalytics/pkg/graph"

// LabelPropagation performs label propagation for community detection.
// Every node starts with a unique label; each round visits nodes in load
// order and adopts the most frequent label among the node's neighbors. A
// node keeps its label when it is among the most frequent, otherwise ties go
// to the smallest label. Stops after a round with no change or maxRounds.
func LabelPropagation(g *graph.Graph, maxRounds int) ([]Community, error) {
	if maxRounds <= 0 {
		maxRounds = DefaultLabelPropRounds
	}
	d := newDense(g)
	n := d.n()

	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
	}

	labelCount := make(map[int]int)
	for round := 0; round < maxRounds; round++ {
		changed := false

		for i := 0; i < n; i++ {
			if len(d.und[i]) == 0 {
				continue
			}
			clear(labelCount)
			maxCount := 0
			for _, j := range d.und[i] {
				labelCount[labels[j]]++
				maxCount = max(maxCount, labelCount[labels[j]])
			}
			if labelCount[labels[i]] == maxCount {
				continue
			}

			best := -1
			for label, count := range labelCount {
				if count == maxCount && (best < 0 || label < best) {
					best = label
				}
			}
			labels[i] = best
			changed = true
		}

		if !changed {
			break
		}
	}

	return describePartition(g, d, labels), nil
}
