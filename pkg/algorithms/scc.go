package algorithms

import "github.com/dd0wney/cluso-graphanalytics/pkg/graph"

// tarjanState holds per-node state during Tarjan's DFS.
type tarjanState struct {
	index   int
	lowlink int
	onStack bool
}

// tarjanFrame is one level of the explicit DFS: the node and the position of
// the next outgoing arc to examine.
type tarjanFrame struct {
	node   int
	cursor int
}

// StronglyConnectedComponents finds all SCCs using Tarjan's algorithm in
// O(V+E) time with an explicit work stack, so recursion depth never tracks
// path length. Undirected graphs fall back to ConnectedComponents.
func StronglyConnectedComponents(g *graph.Graph) ([]Component, error) {
	if !g.Directed() {
		return ConnectedComponents(g)
	}

	d := newDense(g)
	n := d.n()
	state := make([]tarjanState, n)
	visited := make([]bool, n)
	label := make([]int, n)

	var components []Component
	var sccStack []int
	var work []tarjanFrame
	indexCounter := 0

	visit := func(u int) {
		visited[u] = true
		state[u] = tarjanState{index: indexCounter, lowlink: indexCounter, onStack: true}
		indexCounter++
		sccStack = append(sccStack, u)
		work = append(work, tarjanFrame{node: u})
	}

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visit(root)

		for len(work) > 0 {
			top := &work[len(work)-1]
			u := top.node

			if top.cursor < len(d.arcs[u]) {
				v := d.arcs[u][top.cursor].to
				top.cursor++
				if !visited[v] {
					visit(v)
				} else if state[v].onStack {
					state[u].lowlink = min(state[u].lowlink, state[v].index)
				}
				continue
			}

			// All arcs of u examined: pop the frame and report to the parent.
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := work[len(work)-1].node
				state[parent].lowlink = min(state[parent].lowlink, state[u].lowlink)
			}

			// If u is a root node, pop the stack to form an SCC
			if state[u].lowlink == state[u].index {
				id := len(components)
				comp := Component{ID: id, StronglyConnected: true}
				for {
					w := sccStack[len(sccStack)-1]
					sccStack = sccStack[:len(sccStack)-1]
					state[w].onStack = false
					label[w] = id
					comp.Nodes = append(comp.Nodes, d.ids[w])
					if w == u {
						break
					}
				}
				components = append(components, comp)
			}
		}
	}

	attachEdges(g, components, label)
	return components, nil
}
