package algorithms

import "github.com/dd0wney/cluso-graphanalytics/pkg/graph"

// DegreeCentrality computes degree/(n-1) for every node, using the forward
// adjacency length as degree. Graphs with at most one node score 0.
func DegreeCentrality(g *graph.Graph) (map[string]float64, error) {
	ids := g.NodeIDs()
	scores := make(map[string]float64, len(ids))
	n := len(ids)
	for _, id := range ids {
		if n <= 1 {
			scores[id] = 0
			continue
		}
		scores[id] = float64(len(g.Neighbors(id))) / float64(n-1)
	}
	return scores, nil
}

// predEdge tracks a predecessor node and the edge used to reach it during BFS.
// This allows the back-propagation phase to accumulate flow onto specific edges.
type predEdge struct {
	node int
	edge int
}

// brandesScratch holds the per-source buffers reused across one chunk.
type brandesScratch struct {
	stack []int
	queue []int
	preds [][]predEdge
	sigma []float64
	dist  []int
	delta []float64
}

func newBrandesScratch(n int) *brandesScratch {
	return &brandesScratch{
		stack: make([]int, 0, n),
		queue: make([]int, 0, n),
		preds: make([][]predEdge, n),
		sigma: make([]float64, n),
		dist:  make([]int, n),
		delta: make([]float64, n),
	}
}

// accumulate runs one Brandes source pass and adds raw dependencies into
// nodeAcc and edgeAcc.
func (sc *brandesScratch) accumulate(d *dense, source int, nodeAcc, edgeAcc []float64) {
	for i := range sc.dist {
		sc.preds[i] = sc.preds[i][:0]
		sc.sigma[i] = 0
		sc.dist[i] = -1
		sc.delta[i] = 0
	}
	sc.stack = sc.stack[:0]
	sc.queue = sc.queue[:0]

	sc.sigma[source] = 1
	sc.dist[source] = 0
	sc.queue = append(sc.queue, source)

	for head := 0; head < len(sc.queue); head++ {
		v := sc.queue[head]
		sc.stack = append(sc.stack, v)
		for _, a := range d.arcs[v] {
			w := a.to
			if sc.dist[w] < 0 {
				sc.queue = append(sc.queue, w)
				sc.dist[w] = sc.dist[v] + 1
			}
			if sc.dist[w] == sc.dist[v]+1 {
				sc.sigma[w] += sc.sigma[v]
				sc.preds[w] = append(sc.preds[w], predEdge{node: v, edge: a.edge})
			}
		}
	}

	// Back-propagation in reverse finish order
	for i := len(sc.stack) - 1; i >= 0; i-- {
		w := sc.stack[i]
		for _, pred := range sc.preds[w] {
			contribution := (sc.sigma[pred.node] / sc.sigma[w]) * (1.0 + sc.delta[w])
			sc.delta[pred.node] += contribution
			edgeAcc[pred.edge] += contribution
		}
		if w != source {
			nodeAcc[w] += sc.delta[w]
		}
	}
}

// brandes runs the full source sweep and returns raw node and edge
// dependency sums indexed like d.
func brandes(d *dense, o Options) (nodeRaw, edgeRaw []float64, err error) {
	n := d.n()
	workers := o.sweepWorkers(n)
	chunks, _ := chunkPlan(n, workers)
	nodeParts := make([][]float64, chunks)
	edgeParts := make([][]float64, chunks)
	scratch := make([]*brandesScratch, workerSlots(workers))

	err = forChunks(n, workers, func(w, c, lo, hi int) {
		nodeAcc := make([]float64, n)
		edgeAcc := make([]float64, len(d.edgeIDs))
		if scratch[w] == nil {
			scratch[w] = newBrandesScratch(n)
		}
		sc := scratch[w]
		for s := lo; s < hi; s++ {
			sc.accumulate(d, s, nodeAcc, edgeAcc)
		}
		nodeParts[c] = nodeAcc
		edgeParts[c] = edgeAcc
	})
	if err != nil {
		return nil, nil, err
	}

	nodeRaw = make([]float64, n)
	edgeRaw = make([]float64, len(d.edgeIDs))
	for c := 0; c < chunks; c++ {
		for i, v := range nodeParts[c] {
			nodeRaw[i] += v
		}
		for j, v := range edgeParts[c] {
			edgeRaw[j] += v
		}
	}
	return nodeRaw, edgeRaw, nil
}

// BetweennessCentrality computes Brandes betweenness for all nodes.
// Directed scores are normalised by (n-1)(n-2). Undirected sweeps see every
// unordered pair twice, so raw scores are halved and then normalised by
// (n-1)(n-2)/2. Undirected values are therefore half of what dividing the
// unhalved sum by (n-1)(n-2)/2 would give, and lie in [0,1].
func BetweennessCentrality(g *graph.Graph, opts ...Option) (map[string]float64, error) {
	d := newDense(g)
	nodeRaw, _, err := brandes(d, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	n := d.n()
	scores := make(map[string]float64, n)
	norm := 0.0
	if n > 2 {
		pairs := float64((n - 1) * (n - 2))
		if g.Directed() {
			norm = 1.0 / pairs
		} else {
			norm = 0.5 / (pairs / 2)
		}
	}
	for i, id := range d.ids {
		scores[id] = nodeRaw[i] * norm
	}
	return scores, nil
}

// EdgeBetweennessCentrality computes betweenness for every edge from the same
// Brandes pass, normalised by n(n-1) (after halving when undirected).
func EdgeBetweennessCentrality(g *graph.Graph, opts ...Option) (map[string]float64, error) {
	d := newDense(g)
	_, edgeRaw, err := brandes(d, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	n := d.n()
	norm := 0.0
	if n > 1 {
		norm = 1.0 / float64(n*(n-1))
		if !g.Directed() {
			norm *= 0.5
		}
	}
	scores := make(map[string]float64, len(d.edgeIDs))
	for j, id := range d.edgeIDs {
		scores[id] = edgeRaw[j] * norm
	}
	return scores, nil
}

// distanceSweep runs a BFS from every node and reduces each distance vector
// to a single score.
func distanceSweep(g *graph.Graph, o Options, score func(dist []int, order []int) float64) (map[string]float64, error) {
	d := newDense(g)
	n := d.n()
	out := make([]float64, n)
	workers := o.sweepWorkers(n)
	bufs := newBFSBuffers(workerSlots(workers), n)
	defer bufs.release()
	err := forChunks(n, workers, func(w, _, lo, hi int) {
		dist, order := bufs.get(w)
		for s := lo; s < hi; s++ {
			order = d.bfs(s, dist, order)
			out[s] = score(dist, order)
		}
		bufs.order[w] = order
	})
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64, n)
	for i, id := range d.ids {
		scores[id] = out[i]
	}
	return scores, nil
}

// ClosenessCentrality computes (reachable-1)/sum(distances) per node, where
// reachable counts the node itself. Nodes that reach nobody score 0.
func ClosenessCentrality(g *graph.Graph, opts ...Option) (map[string]float64, error) {
	return distanceSweep(g, applyOptions(opts), func(dist []int, order []int) float64 {
		if len(order) <= 1 {
			return 0
		}
		total := 0
		for _, v := range order {
			total += dist[v]
		}
		return float64(len(order)-1) / float64(total)
	})
}

// HarmonicCentrality sums 1/d over every node reachable at non-zero distance.
func HarmonicCentrality(g *graph.Graph, opts ...Option) (map[string]float64, error) {
	return distanceSweep(g, applyOptions(opts), func(dist []int, order []int) float64 {
		sum := 0.0
		for _, v := range order {
			if dist[v] > 0 {
				sum += 1.0 / float64(dist[v])
			}
		}
		return sum
	})
}
