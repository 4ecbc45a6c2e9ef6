package algorithms

import "github.com/dd0wney/cluso-graphanalytics/pkg/graph"

// ClusteringCoefficient computes the local clustering coefficient of every
// node on the direction-free simple view: the fraction of neighbor pairs that
// are themselves adjacent. Nodes with fewer than two neighbors score 0.
func ClusteringCoefficient(g *graph.Graph) (map[string]float64, error) {
	d := newDense(g)
	coeffs, _, _ := localClustering(d)
	return indexScores(d.ids, coeffs), nil
}

// AverageClusteringCoefficient is the mean local coefficient over all nodes.
func AverageClusteringCoefficient(g *graph.Graph) float64 {
	d := newDense(g)
	coeffs, _, _ := localClustering(d)
	return mean(coeffs)
}

// localClustering returns per-node coefficients plus the global triangle and
// connected-triple counts.
func localClustering(d *dense) (coeffs []float64, triangles, triples int) {
	n := d.n()
	coeffs = make([]float64, n)
	mark := make([]bool, n)
	for i := 0; i < n; i++ {
		nbrs := d.und[i]
		k := len(nbrs)
		if k < 2 {
			continue
		}
		for _, v := range nbrs {
			mark[v] = true
		}
		links := 0
		for _, v := range nbrs {
			for _, w := range d.und[v] {
				if mark[w] {
					links++
				}
			}
		}
		for _, v := range nbrs {
			mark[v] = false
		}
		links /= 2
		possible := k * (k - 1) / 2
		coeffs[i] = float64(links) / float64(possible)
		triangles += links
		triples += possible
	}
	// every triangle was counted once at each of its three corners
	return coeffs, triangles / 3, triples
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
