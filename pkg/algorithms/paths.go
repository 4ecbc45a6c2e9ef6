package algorithms

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
	"github.com/dd0wney/cluso-graphanalytics/pkg/parallel"
)

// UnweightedDistances returns BFS hop distances from source over the forward
// adjacency. Unreached nodes are absent; the source maps to 0.
func UnweightedDistances(g *graph.Graph, source string) map[string]int {
	if !g.HasNode(source) {
		return map[string]int{}
	}
	dist := map[string]int{source: 0}
	queue := []string{source}
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		for _, w := range g.Neighbors(v) {
			if _, seen := dist[w]; !seen {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
		}
	}
	return dist
}

// distItem is a Dijkstra frontier entry. Ties on distance resolve to the
// lower load position.
type distItem struct {
	node int
	dist float64
}

type distHeap []distItem

func (h distHeap) Len() int { return len(h) }
func (h distHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].node < h[j].node
}
func (h distHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x any)   { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// WeightedShortestPath runs Dijkstra from source to target. Each hop costs
// the lightest of its parallel edges. An unreachable target yields a path of
// just the source with infinite weight.
func WeightedShortestPath(g *graph.Graph, source, target string) (Path, error) {
	if !g.HasNode(source) {
		return Path{}, fmt.Errorf("%w: source %q", ErrNodeNotFound, source)
	}
	if !g.HasNode(target) {
		return Path{}, fmt.Errorf("%w: target %q", ErrNodeNotFound, target)
	}

	ids := g.NodeIDs()
	n := len(ids)
	src, dst := g.Index(source), g.Index(target)

	dist := make([]float64, n)
	prevNode := make([]int, n)
	prevEdge := make([]string, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prevNode[i] = -1
	}
	dist[src] = 0

	h := &distHeap{{node: src, dist: 0}}
	for h.Len() > 0 {
		cur := heap.Pop(h).(distItem)
		u := cur.node
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == dst {
			break
		}
		for _, inc := range g.IncidentEdges(ids[u]) {
			v := g.Index(inc.Neighbor)
			if visited[v] {
				continue
			}
			if alt := dist[u] + inc.Edge.Weight; alt < dist[v] {
				dist[v] = alt
				prevNode[v] = u
				prevEdge[v] = inc.Edge.ID
				heap.Push(h, distItem{node: v, dist: alt})
			}
		}
	}

	if math.IsInf(dist[dst], 1) {
		return Path{Source: source, Target: target, Nodes: []string{source}, Weight: math.Inf(1)}, nil
	}
	return tracePath(ids, prevNode, prevEdge, src, dst, dist[dst]), nil
}

// tracePath rebuilds the route to dst from predecessor arrays.
func tracePath(ids []string, prevNode []int, prevEdge []string, src, dst int, weight float64) Path {
	var nodes []string
	var edges []string
	for v := dst; v != -1; v = prevNode[v] {
		nodes = append(nodes, ids[v])
		if v == src {
			break
		}
		edges = append(edges, prevEdge[v])
	}
	reverseStrings(nodes)
	reverseStrings(edges)
	return Path{
		Source: ids[src],
		Target: ids[dst],
		Nodes:  nodes,
		Edges:  edges,
		Length: len(nodes) - 1,
		Weight: weight,
	}
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// ShortestPathTree returns one BFS shortest path from source to every other
// reachable node, in visit order. Weight equals hop count.
func ShortestPathTree(g *graph.Graph, source string) ([]Path, error) {
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %q", ErrNodeNotFound, source)
	}
	return bfsTree(g, g.Index(source)), nil
}

func bfsTree(g *graph.Graph, src int) []Path {
	ids := g.NodeIDs()
	n := len(ids)
	prevNode := make([]int, n)
	prevEdge := make([]string, n)
	seen := make([]bool, n)
	for i := range prevNode {
		prevNode[i] = -1
	}

	seen[src] = true
	order := []int{src}
	for head := 0; head < len(order); head++ {
		u := order[head]
		for _, inc := range g.IncidentEdges(ids[u]) {
			v := g.Index(inc.Neighbor)
			if seen[v] {
				continue
			}
			seen[v] = true
			prevNode[v] = u
			prevEdge[v] = inc.Edge.ID
			order = append(order, v)
		}
	}

	paths := make([]Path, 0, len(order)-1)
	for _, v := range order[1:] {
		p := tracePath(ids, prevNode, prevEdge, src, v, 0)
		p.Weight = float64(p.Length)
		paths = append(paths, p)
	}
	return paths
}

// AllPairsShortestPaths runs a BFS tree from every node. Results are grouped
// by source in load order.
func AllPairsShortestPaths(g *graph.Graph, opts ...Option) ([]Path, error) {
	o := applyOptions(opts)
	n := g.NodeCount()
	perSource := make([][]Path, n)
	err := parallel.ForEach(n, o.sweepWorkers(n), func(i int) {
		perSource[i] = bfsTree(g, i)
	})
	if err != nil {
		return nil, err
	}

	var out []Path
	for _, paths := range perSource {
		out = append(out, paths...)
	}
	return out, nil
}

// BellmanFord computes weighted shortest paths from source, allowing negative
// edge weights. Undirected edges relax in both directions, so a negative
// undirected edge is itself a negative cycle.
func BellmanFord(g *graph.Graph, source string) ([]Path, error) {
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %q", ErrNodeNotFound, source)
	}

	ids := g.NodeIDs()
	n := len(ids)
	src := g.Index(source)

	dist := make([]float64, n)
	prevNode := make([]int, n)
	prevEdge := make([]string, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prevNode[i] = -1
	}
	dist[src] = 0

	relax := func() bool {
		changed := false
		for u, id := range ids {
			if math.IsInf(dist[u], 1) {
				continue
			}
			for _, inc := range g.IncidentEdges(id) {
				v := g.Index(inc.Neighbor)
				if alt := dist[u] + inc.Edge.Weight; alt < dist[v] {
					dist[v] = alt
					prevNode[v] = u
					prevEdge[v] = inc.Edge.ID
					changed = true
				}
			}
		}
		return changed
	}

	for round := 0; round < n-1; round++ {
		if !relax() {
			break
		}
	}
	if relax() {
		return nil, fmt.Errorf("bellman-ford from %q: %w", source, ErrNegativeCycle)
	}

	var paths []Path
	for v := range ids {
		if v == src || math.IsInf(dist[v], 1) {
			continue
		}
		paths = append(paths, tracePath(ids, prevNode, prevEdge, src, v, dist[v]))
	}
	return paths, nil
}

// FloydWarshall computes weighted shortest paths between every ordered pair
// of distinct reachable nodes, ordered by source then target load position.
func FloydWarshall(g *graph.Graph) ([]Path, error) {
	ids := g.NodeIDs()
	n := len(ids)

	dist := make([][]float64, n)
	next := make([][]int, n)
	hop := make([][]string, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		next[i] = make([]int, n)
		hop[i] = make([]string, n)
		for j := range dist[i] {
			dist[i][j] = math.Inf(1)
			next[i][j] = -1
		}
		dist[i][i] = 0
		next[i][i] = i
	}
	for u, id := range ids {
		for _, inc := range g.IncidentEdges(id) {
			v := g.Index(inc.Neighbor)
			if u == v {
				// a negative self-loop is a one-edge negative cycle
				dist[u][u] = min(dist[u][u], inc.Edge.Weight)
				continue
			}
			if inc.Edge.Weight < dist[u][v] {
				dist[u][v] = inc.Edge.Weight
				next[u][v] = v
				hop[u][v] = inc.Edge.ID
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if math.IsInf(dist[i][k], 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if alt := dist[i][k] + dist[k][j]; alt < dist[i][j] {
					dist[i][j] = alt
					next[i][j] = next[i][k]
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, fmt.Errorf("floyd-warshall at %q: %w", ids[i], ErrNegativeCycle)
		}
	}

	var paths []Path
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || next[i][j] < 0 {
				continue
			}
			nodes := []string{ids[i]}
			var edges []string
			for u := i; u != j; {
				v := next[u][j]
				edges = append(edges, hop[u][v])
				nodes = append(nodes, ids[v])
				u = v
			}
			paths = append(paths, Path{
				Source: ids[i],
				Target: ids[j],
				Nodes:  nodes,
				Edges:  edges,
				Length: len(nodes) - 1,
				Weight: dist[i][j],
			})
		}
	}
	return paths, nil
}
