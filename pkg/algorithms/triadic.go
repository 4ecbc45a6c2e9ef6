package algorithms

import "github.com/dd0wney/cluso-graphanalytics/pkg/graph"

// MAN triad codes in the conventional census order.
var TriadCodes = []string{
	"003", "012", "102", "021D", "021U", "021C", "111D", "111U",
	"030T", "030C", "201", "120D", "120U", "120C", "210", "300",
}

// edgeCountCodes maps the number of arcs inside a triple (0-6) to the code
// reported by the simplified census.
var edgeCountCodes = [7]string{"003", "012", "102", "021D", "111D", "210", "300"}

// triadArcs holds the six possible arcs between three nodes: has[i][j] means
// an arc from node i to node j of the triple.
type triadArcs [3][3]bool

func collectTriads(g *graph.Graph, visit func(t *triadArcs)) {
	d := newDense(g)
	n := d.n()
	has := make(map[[2]int]struct{})
	for u, id := range d.ids {
		for _, v := range g.SimpleNeighbors(id) {
			has[[2]int{u, g.Index(v)}] = struct{}{}
		}
	}
	arcAt := func(u, v int) bool {
		_, ok := has[[2]int{u, v}]
		return ok
	}

	var t triadArcs
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				nodes := [3]int{i, j, k}
				for a := 0; a < 3; a++ {
					for b := 0; b < 3; b++ {
						t[a][b] = a != b && arcAt(nodes[a], nodes[b])
					}
				}
				visit(&t)
			}
		}
	}
}

// TriadicCensus buckets every unordered node triple by its raw arc count
// (0 through 6) into 003, 012, 102, 021D, 111D, 210 and 300. This is a
// coarse approximation of the 16-type census; FullTriadicCensus performs the
// exact classification.
func TriadicCensus(g *graph.Graph) (map[string]int, error) {
	census := make(map[string]int, len(edgeCountCodes))
	for _, code := range edgeCountCodes {
		census[code] = 0
	}
	collectTriads(g, func(t *triadArcs) {
		arcs := 0
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				if t[a][b] {
					arcs++
				}
			}
		}
		census[edgeCountCodes[arcs]]++
	})
	return census, nil
}

// FullTriadicCensus classifies every unordered triple into one of the 16 MAN
// triad types.
func FullTriadicCensus(g *graph.Graph) (map[string]int, error) {
	census := make(map[string]int, len(TriadCodes))
	for _, code := range TriadCodes {
		census[code] = 0
	}
	collectTriads(g, func(t *triadArcs) {
		census[classifyTriad(t)]++
	})
	return census, nil
}

// dyad kinds
const (
	dyadNull = iota
	dyadAsym
	dyadMutual
)

var triadPairs = [3][2]int{{0, 1}, {0, 2}, {1, 2}}

func dyadKind(t *triadArcs, a, b int) int {
	switch {
	case t[a][b] && t[b][a]:
		return dyadMutual
	case t[a][b] || t[b][a]:
		return dyadAsym
	}
	return dyadNull
}

// sharedNode returns the node common to two of the three pairs.
func sharedNode(p, q [2]int) int {
	for _, x := range p {
		if x == q[0] || x == q[1] {
			return x
		}
	}
	return -1
}

// classifyTriad names the MAN type of one triple.
func classifyTriad(t *triadArcs) string {
	var kinds [3]int
	var mutual, asym, null int
	for i, p := range triadPairs {
		kinds[i] = dyadKind(t, p[0], p[1])
		switch kinds[i] {
		case dyadMutual:
			mutual++
		case dyadAsym:
			asym++
		default:
			null++
		}
	}

	pairsOf := func(kind int) [][2]int {
		var out [][2]int
		for i, p := range triadPairs {
			if kinds[i] == kind {
				out = append(out, p)
			}
		}
		return out
	}
	outArcs := func(x int) int {
		count := 0
		for y := 0; y < 3; y++ {
			if y != x && t[x][y] && !t[y][x] {
				count++
			}
		}
		return count
	}
	inArcs := func(x int) int {
		count := 0
		for y := 0; y < 3; y++ {
			if y != x && t[y][x] && !t[x][y] {
				count++
			}
		}
		return count
	}

	switch {
	case null == 3:
		return "003"
	case asym == 1 && null == 2:
		return "012"
	case mutual == 1 && null == 2:
		return "102"
	case asym == 2 && null == 1:
		as := pairsOf(dyadAsym)
		x := sharedNode(as[0], as[1])
		switch outArcs(x) {
		case 2:
			return "021D"
		case 0:
			return "021U"
		}
		return "021C"
	case mutual == 1 && asym == 1:
		x := sharedNode(pairsOf(dyadMutual)[0], pairsOf(dyadAsym)[0])
		if inArcs(x) == 1 {
			return "111D"
		}
		return "111U"
	case asym == 3:
		for x := 0; x < 3; x++ {
			if outArcs(x) != 1 {
				return "030T"
			}
		}
		return "030C"
	case mutual == 2 && null == 1:
		return "201"
	case mutual == 1 && asym == 2:
		m := pairsOf(dyadMutual)[0]
		r := 3 - m[0] - m[1]
		switch outArcs(r) {
		case 2:
			return "120D"
		case 0:
			return "120U"
		}
		return "120C"
	case mutual == 2 && asym == 1:
		return "210"
	}
	return "300"
}
