package analysis

import (
	"strconv"

	"github.com/dd0wney/cluso-graphanalytics/pkg/algorithms"
	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
)

// request is the input of one handler invocation. Handlers record extra
// outputs (iteration counts, totals) in params.
type request struct {
	g           *graph.Graph
	props       *graph.PropertyCache
	kind        Kind
	opts        []algorithms.Option
	tolerance   float64
	labelRounds int
	params      map[string]string
}

func (r *request) setInt(key string, v int)       { r.params[key] = strconv.Itoa(v) }
func (r *request) setFloat(key string, v float64) { r.params[key] = formatFloat(v) }
func (r *request) setBool(key string, v bool)     { r.params[key] = strconv.FormatBool(v) }

type handler func(r *request) (Data, error)

func defaultHandlers() map[Type]handler {
	return map[Type]handler{
		TypeDegreeCentrality:      scoreHandler(degree),
		TypeBetweennessCentrality: scoreHandler(betweenness),
		TypeClosenessCentrality:   scoreHandler(closeness),
		TypeHarmonicCentrality:    scoreHandler(harmonic),
		TypeArticulationPoints:    scoreHandler(cutVertices),
		TypeClusteringCoefficient: runClustering,
		TypeEdgeBetweenness:       runEdgeBetweenness,
		TypeBridges:               runBridges,
		TypeEigenvectorCentrality: runEigenvector,
		TypePageRank:              runPageRank,
		TypeKatzCentrality:        runKatz,

		TypeLouvainCommunityDetection: partitionHandler(greedyModularity),
		TypeModularityOptimization:    partitionHandler(greedyModularity),
		TypeLabelPropagation:          partitionHandler(labelPropagation),
		TypeGirvanNewman:              partitionHandler(bisection),
		TypeSpectralClustering:        partitionHandler(orderSlices),
		TypeEdgeBetweennessClustering: partitionHandler(edgeRemoval),

		TypeShortestPaths:             pathHandler(pathTree),
		TypeAllPairsShortestPaths:     pathHandler(allPairs),
		TypeBellmanFordShortestPath:   pathHandler(bellmanFord),
		TypeFloydWarshallShortestPath: pathHandler(floydWarshall),
		TypeDijkstraShortestPath:      runDijkstra,

		TypeConnectedComponents:         componentHandler(algorithms.ConnectedComponents),
		TypeStronglyConnectedComponents: componentHandler(algorithms.StronglyConnectedComponents),
		TypeMinimumSpanningTree:         runSpanningTree,

		TypeNetworkDensity:    runDensity,
		TypeDiameter:          runDiameter,
		TypeRadius:            runRadius,
		TypeAssortativity:     runAssortativity,
		TypeSmallWorldness:    runSmallWorldness,
		TypeNetworkSummary:    runSummary,
		TypeMaximumFlow:       runFlow,
		TypeMinimumCut:        runFlow,
		TypeNetworkMotifs:     runMotifs,
		TypeTriadicCensus:     censusHandler(algorithms.TriadicCensus),
		TypeFullTriadicCensus: censusHandler(algorithms.FullTriadicCensus),
		TypeKCore:             runKCore,
	}
}

func degree(r *request) (map[string]float64, error) { return algorithms.DegreeCentrality(r.g) }

func betweenness(r *request) (map[string]float64, error) {
	return algorithms.BetweennessCentrality(r.g, r.opts...)
}

func closeness(r *request) (map[string]float64, error) {
	return algorithms.ClosenessCentrality(r.g, r.opts...)
}

func harmonic(r *request) (map[string]float64, error) {
	return algorithms.HarmonicCentrality(r.g, r.opts...)
}

func cutVertices(r *request) (map[string]float64, error) { return algorithms.ArticulationPoints(r.g) }

func greedyModularity(r *request) ([]algorithms.Community, error) {
	return algorithms.GreedyModularity(r.g)
}

func labelPropagation(r *request) ([]algorithms.Community, error) {
	return algorithms.LabelPropagation(r.g, r.labelRounds)
}

func bisection(r *request) ([]algorithms.Community, error)   { return algorithms.OrderBisection(r.g) }
func orderSlices(r *request) ([]algorithms.Community, error) { return algorithms.OrderSlices(r.g, r.kind.K) }

func edgeRemoval(r *request) ([]algorithms.Community, error) {
	return algorithms.EdgeBetweennessClustering(r.g, r.kind.K, r.opts...)
}

func pathTree(r *request) ([]algorithms.Path, error) {
	return algorithms.ShortestPathTree(r.g, r.kind.Source)
}

func allPairs(r *request) ([]algorithms.Path, error) {
	return algorithms.AllPairsShortestPaths(r.g, r.opts...)
}

func bellmanFord(r *request) ([]algorithms.Path, error) {
	return algorithms.BellmanFord(r.g, r.kind.Source)
}

func floydWarshall(r *request) ([]algorithms.Path, error) { return algorithms.FloydWarshall(r.g) }

func scoreHandler(fn func(r *request) (map[string]float64, error)) handler {
	return func(r *request) (Data, error) {
		scores, err := fn(r)
		if err != nil {
			return Data{}, err
		}
		return nodeScores(scores), nil
	}
}

func partitionHandler(fn func(r *request) ([]algorithms.Community, error)) handler {
	return func(r *request) (Data, error) {
		cs, err := fn(r)
		if err != nil {
			return Data{}, err
		}
		r.setInt("communities", len(cs))
		r.setFloat("modularity", algorithms.Modularity(cs))
		return communities(cs), nil
	}
}

func pathHandler(fn func(r *request) ([]algorithms.Path, error)) handler {
	return func(r *request) (Data, error) {
		ps, err := fn(r)
		if err != nil {
			return Data{}, err
		}
		r.setInt("paths", len(ps))
		return paths(ps), nil
	}
}

func componentHandler(fn func(g *graph.Graph) ([]algorithms.Component, error)) handler {
	return func(r *request) (Data, error) {
		cs, err := fn(r.g)
		if err != nil {
			return Data{}, err
		}
		r.setInt("components", len(cs))
		r.setInt("largest", algorithms.LargestComponentSize(cs))
		return components(cs), nil
	}
}

func censusHandler(fn func(g *graph.Graph) (map[string]int, error)) handler {
	return func(r *request) (Data, error) {
		census, err := fn(r.g)
		if err != nil {
			return Data{}, err
		}
		return triads(census), nil
	}
}

func runClustering(r *request) (Data, error) {
	coeffs, err := algorithms.ClusteringCoefficient(r.g)
	if err != nil {
		return Data{}, err
	}
	r.setFloat("average", algorithms.AverageClusteringCoefficient(r.g))
	return nodeScores(coeffs), nil
}

func runEdgeBetweenness(r *request) (Data, error) {
	scores, err := algorithms.EdgeBetweennessCentrality(r.g, r.opts...)
	if err != nil {
		return Data{}, err
	}
	return edgeScores(scores), nil
}

func runBridges(r *request) (Data, error) {
	scores, err := algorithms.Bridges(r.g)
	if err != nil {
		return Data{}, err
	}
	count := 0
	for _, s := range scores {
		if s > 0 {
			count++
		}
	}
	r.setInt("bridges", count)
	return edgeScores(scores), nil
}

func (r *request) recordIterations(res *algorithms.IterativeResult) {
	r.setInt("iterations", res.Iterations)
	r.setBool("converged", res.Converged)
}

func runEigenvector(r *request) (Data, error) {
	res, err := algorithms.EigenvectorCentrality(r.g, r.opts...)
	if err != nil {
		return Data{}, err
	}
	r.recordIterations(res)
	return nodeScores(res.Scores), nil
}

func runPageRank(r *request) (Data, error) {
	res, err := algorithms.PageRank(r.g, algorithms.PageRankOptions{
		DampingFactor: r.kind.Damping,
		MaxIterations: r.kind.MaxIterations,
		Tolerance:     r.tolerance,
	})
	if err != nil {
		return Data{}, err
	}
	r.recordIterations(&res.IterativeResult)
	if len(res.TopNodes) > 0 {
		r.params["top_node"] = res.TopNodes[0].NodeID
	}
	return nodeScores(res.Scores), nil
}

func runKatz(r *request) (Data, error) {
	res, err := algorithms.KatzCentrality(r.g, r.kind.Alpha, r.opts...)
	if err != nil {
		return Data{}, err
	}
	r.recordIterations(res)
	return nodeScores(res.Scores), nil
}

func runDijkstra(r *request) (Data, error) {
	p, err := algorithms.WeightedShortestPath(r.g, r.kind.Source, r.kind.Target)
	if err != nil {
		return Data{}, err
	}
	r.setFloat("distance", p.Weight)
	return paths([]algorithms.Path{p}), nil
}

func runSpanningTree(r *request) (Data, error) {
	scores, forest, err := algorithms.MinimumSpanningTree(r.g)
	if err != nil {
		return Data{}, err
	}
	r.setFloat("total_weight", forest.TotalWeight)
	r.setInt("edges", len(forest.EdgeIDs))
	return edgeScores(scores), nil
}

func (r *request) metrics() *algorithms.NetworkMetrics {
	return &algorithms.NetworkMetrics{NodeCount: r.g.NodeCount(), EdgeCount: r.g.EdgeCount()}
}

func runDensity(r *request) (Data, error) {
	m := r.metrics()
	m.Density = algorithms.Density(r.g)
	return networkMetrics(m), nil
}

func runDiameter(r *request) (Data, error) {
	v, err := algorithms.Diameter(r.g, r.opts...)
	if err != nil {
		return Data{}, err
	}
	m := r.metrics()
	m.Diameter = v
	return networkMetrics(m), nil
}

func runRadius(r *request) (Data, error) {
	v, err := algorithms.Radius(r.g, r.opts...)
	if err != nil {
		return Data{}, err
	}
	m := r.metrics()
	m.Radius = v
	return networkMetrics(m), nil
}

func runAssortativity(r *request) (Data, error) {
	m := r.metrics()
	m.Assortativity = algorithms.Assortativity(r.g, r.props)
	return networkMetrics(m), nil
}

func runSmallWorldness(r *request) (Data, error) {
	v, err := algorithms.SmallWorldness(r.g, r.opts...)
	if err != nil {
		return Data{}, err
	}
	m := r.metrics()
	m.SmallWorldness = v
	return networkMetrics(m), nil
}

func runSummary(r *request) (Data, error) {
	m, err := algorithms.NetworkSummary(r.g, r.props, r.opts...)
	if err != nil {
		return Data{}, err
	}
	return networkMetrics(m), nil
}

func runFlow(r *request) (Data, error) {
	res, err := algorithms.MaxFlow(r.g, r.kind.Source, r.kind.Target)
	if err != nil {
		return Data{}, err
	}
	r.setFloat("max_flow", res.MaxFlow)
	r.setInt("cut_size", len(res.CutEdges))
	return flow(res), nil
}

func runMotifs(r *request) (Data, error) {
	counts, err := algorithms.CountMotifs(r.g)
	if err != nil {
		return Data{}, err
	}
	return motifCounts(counts), nil
}

func runKCore(r *request) (Data, error) {
	core, err := algorithms.KCore(r.g, r.kind.K)
	if err != nil {
		return Data{}, err
	}
	r.setInt("size", len(core))
	return coreNumbers(core), nil
}

// scoreSlots maps centrality types to the PropertyCache slot they annotate.
var scoreSlots = map[Type]graph.Slot{
	TypeBetweennessCentrality: graph.SlotBetweenness,
	TypeClosenessCentrality:   graph.SlotCloseness,
	TypeEigenvectorCentrality: graph.SlotEigenvector,
	TypePageRank:              graph.SlotPageRank,
	TypeClusteringCoefficient: graph.SlotClustering,
}

func annotate(props *graph.PropertyCache, t Type, d Data) {
	if slot, ok := scoreSlots[t]; ok && d.Kind == DataNodeScores {
		props.Annotate(slot, d.NodeScores)
		return
	}
	if d.Kind == DataCommunities {
		props.SetCommunities(algorithms.Membership(d.Communities))
	}
}
