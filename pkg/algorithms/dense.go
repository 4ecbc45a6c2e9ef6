package algorithms

import (
	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
	"github.com/dd0wney/cluso-graphanalytics/pkg/parallel"
	"github.com/dd0wney/cluso-graphanalytics/pkg/pools"
)

// arc is one forward incidence: the neighbor and the edge index reaching it.
type arc struct {
	to   int
	edge int
}

// dense is an index-addressed snapshot of a Graph used by the sweep-heavy
// algorithms. Index i is the node's load position, edge index j the edge's.
type dense struct {
	ids     []string
	edgeIDs []string
	// arcs keeps parallel edges; und is the direction-free simple view.
	arcs [][]arc
	und  [][]int
}

func newDense(g *graph.Graph) *dense {
	ids := g.NodeIDs()
	edgeIDs := g.EdgeIDs()
	edgePos := make(map[string]int, len(edgeIDs))
	for j, id := range edgeIDs {
		edgePos[id] = j
	}

	d := &dense{
		ids:     ids,
		edgeIDs: edgeIDs,
		arcs:    make([][]arc, len(ids)),
		und:     make([][]int, len(ids)),
	}
	for i, id := range ids {
		incs := g.IncidentEdges(id)
		d.arcs[i] = make([]arc, len(incs))
		for j, inc := range incs {
			d.arcs[i][j] = arc{to: g.Index(inc.Neighbor), edge: edgePos[inc.Edge.ID]}
		}
		und := g.UndirectedNeighbors(id)
		d.und[i] = make([]int, len(und))
		for j, v := range und {
			d.und[i][j] = g.Index(v)
		}
	}
	return d
}

func (d *dense) n() int { return len(d.ids) }

// bfs fills dist (pre-sized to n) with forward hop distances from src, using
// -1 for unreached nodes, and returns nodes in visit order.
func (d *dense) bfs(src int, dist []int, order []int) []int {
	for i := range dist {
		dist[i] = -1
	}
	order = order[:0]
	dist[src] = 0
	order = append(order, src)
	for head := 0; head < len(order); head++ {
		v := order[head]
		for _, a := range d.arcs[v] {
			if dist[a.to] < 0 {
				dist[a.to] = dist[v] + 1
				order = append(order, a.to)
			}
		}
	}
	return order
}

// bfsBuffers hands each worker one pooled dist/order pair for the whole
// sweep.
type bfsBuffers struct {
	n     int
	dist  [][]int
	order [][]int
}

func newBFSBuffers(slots, n int) *bfsBuffers {
	return &bfsBuffers{n: n, dist: make([][]int, slots), order: make([][]int, slots)}
}

func (b *bfsBuffers) get(w int) (dist, order []int) {
	if b.dist[w] == nil {
		b.dist[w] = pools.GetInts(b.n)[:b.n]
		b.order[w] = pools.GetInts(b.n)
	}
	return b.dist[w], b.order[w]
}

func (b *bfsBuffers) release() {
	for w := range b.dist {
		if b.dist[w] != nil {
			pools.PutInts(b.dist[w])
			pools.PutInts(b.order[w])
		}
	}
}

// chunkPlan splits n items into contiguous chunks sized for workers.
func chunkPlan(n, workers int) (chunks, size int) {
	if n == 0 {
		return 0, 0
	}
	chunks = 1
	if workers > 1 {
		chunks = min(n, workers*4)
	}
	size = (n + chunks - 1) / chunks
	chunks = (n + size - 1) / size
	return chunks, size
}

// forChunks runs fn for every chunk of chunkPlan(n, workers), in parallel
// when workers > 1. Chunk indices are dense so callers can keep one
// accumulator per chunk; worker is below max(workers, 1) and never runs two
// chunks at once.
func forChunks(n, workers int, fn func(worker, chunk, lo, hi int)) error {
	chunks, size := chunkPlan(n, workers)
	return parallel.ForEachWorker(chunks, workers, func(w, c int) {
		lo := c * size
		fn(w, c, lo, min(n, lo+size))
	})
}

// workerSlots sizes per-worker scratch for forChunks.
func workerSlots(workers int) int {
	return min(max(workers, 1), parallel.MaxWorkers)
}
