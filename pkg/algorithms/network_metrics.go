package algorithms

import (
	"math"

	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
)

// Density is m / n(n-1) for directed graphs and m / (n(n-1)/2) otherwise.
func Density(g *graph.Graph) float64 {
	n := float64(g.NodeCount())
	if n < 2 {
		return 0
	}
	possible := n * (n - 1)
	if !g.Directed() {
		possible /= 2
	}
	return float64(g.EdgeCount()) / possible
}

// distanceProfile aggregates one all-sources BFS sweep.
type distanceProfile struct {
	eccentricity []int
	totalHops    int
	pairs        int
}

func profileDistances(d *dense, o Options) (*distanceProfile, error) {
	n := d.n()
	ecc := make([]int, n)
	sums := make([]int, n)
	reached := make([]int, n)
	workers := o.sweepWorkers(n)
	bufs := newBFSBuffers(workerSlots(workers), n)
	defer bufs.release()
	err := forChunks(n, workers, func(w, _, lo, hi int) {
		dist, order := bufs.get(w)
		defer func() { bufs.order[w] = order }()
		for s := lo; s < hi; s++ {
			order = d.bfs(s, dist, order)
			for _, v := range order {
				ecc[s] = max(ecc[s], dist[v])
				sums[s] += dist[v]
			}
			reached[s] = len(order) - 1
		}
	})
	if err != nil {
		return nil, err
	}

	p := &distanceProfile{eccentricity: ecc}
	for s := 0; s < n; s++ {
		p.totalHops += sums[s]
		p.pairs += reached[s]
	}
	return p, nil
}

// Diameter is the largest eccentricity, where a node's eccentricity is its
// greatest finite BFS distance. Empty graphs report 0.
func Diameter(g *graph.Graph, opts ...Option) (float64, error) {
	p, err := profileDistances(newDense(g), applyOptions(opts))
	if err != nil {
		return 0, err
	}
	return float64(diameterOf(p)), nil
}

// Radius is the smallest eccentricity. Empty graphs report 0.
func Radius(g *graph.Graph, opts ...Option) (float64, error) {
	p, err := profileDistances(newDense(g), applyOptions(opts))
	if err != nil {
		return 0, err
	}
	return float64(radiusOf(p)), nil
}

func diameterOf(p *distanceProfile) int {
	best := 0
	for _, e := range p.eccentricity {
		best = max(best, e)
	}
	return best
}

func radiusOf(p *distanceProfile) int {
	if len(p.eccentricity) == 0 {
		return 0
	}
	best := p.eccentricity[0]
	for _, e := range p.eccentricity[1:] {
		best = min(best, e)
	}
	return best
}

func (p *distanceProfile) averagePathLength() float64 {
	if p.pairs == 0 {
		return 0
	}
	return float64(p.totalHops) / float64(p.pairs)
}

// Assortativity is the Pearson correlation of (degree(source),
// degree(target)) over all edges, with undirected edges counted in both
// orientations. Degrees come from props when given. Returns 0 when the
// correlation is undefined.
func Assortativity(g *graph.Graph, props *graph.PropertyCache) float64 {
	degree := func(id string) float64 {
		if props != nil {
			return float64(props.Degree(id))
		}
		return float64(len(g.Neighbors(id)))
	}

	var sumX, sumY, sumXY, sumX2, sumY2, count float64
	add := func(x, y float64) {
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
		sumY2 += y * y
		count++
	}
	for _, e := range g.Edges() {
		x, y := degree(e.Source), degree(e.Target)
		add(x, y)
		if !g.Directed() {
			add(y, x)
		}
	}
	if count == 0 {
		return 0
	}

	numerator := count*sumXY - sumX*sumY
	denominator := math.Sqrt(count*sumX2-sumX*sumX) * math.Sqrt(count*sumY2-sumY*sumY)
	if denominator == 0 || math.IsNaN(denominator) {
		return 0
	}
	return numerator / denominator
}

// SmallWorldness is (C/C_rand) / (L/L_rand) where C is the average local
// clustering coefficient, L the mean BFS distance over reachable ordered
// pairs, k = 2m/n, C_rand = k/n and L_rand = ln n / ln k. Returns 0 when any
// term is undefined.
func SmallWorldness(g *graph.Graph, opts ...Option) (float64, error) {
	d := newDense(g)
	p, err := profileDistances(d, applyOptions(opts))
	if err != nil {
		return 0, err
	}
	coeffs, _, _ := localClustering(d)
	return smallWorldness(g, mean(coeffs), p.averagePathLength()), nil
}

func smallWorldness(g *graph.Graph, clustering, pathLength float64) float64 {
	n := float64(g.NodeCount())
	if n < 2 {
		return 0
	}
	k := 2 * float64(g.EdgeCount()) / n
	if k <= 1 || clustering == 0 || pathLength == 0 {
		return 0
	}
	randomClustering := k / n
	randomPathLength := math.Log(n) / math.Log(k)
	if randomPathLength <= 0 {
		return 0
	}
	return (clustering / randomClustering) / (pathLength / randomPathLength)
}

// NetworkSummary computes every whole-graph metric from one distance sweep
// and one clustering pass.
func NetworkSummary(g *graph.Graph, props *graph.PropertyCache, opts ...Option) (*NetworkMetrics, error) {
	d := newDense(g)
	p, err := profileDistances(d, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	coeffs, triangles, triples := localClustering(d)

	m := &NetworkMetrics{
		NodeCount:             g.NodeCount(),
		EdgeCount:             g.EdgeCount(),
		Density:               Density(g),
		Diameter:              float64(diameterOf(p)),
		Radius:                float64(radiusOf(p)),
		AveragePathLength:     p.averagePathLength(),
		ClusteringCoefficient: mean(coeffs),
		Assortativity:         Assortativity(g, props),
	}
	if triples > 0 {
		m.Transitivity = 3 * float64(triangles) / float64(triples)
	}
	m.SmallWorldness = smallWorldness(g, m.ClusteringCoefficient, m.AveragePathLength)
	return m, nil
}
