package algorithms

import "github.com/dd0wney/cluso-graphanalytics/pkg/graph"

// ConnectedComponents finds the connected components of the direction-free
// view with an explicit stack. Each unvisited node in load order seeds a new
// component; members appear in visit order. In an undirected graph every
// component is also strongly connected.
func ConnectedComponents(g *graph.Graph) ([]Component, error) {
	d := newDense(g)
	n := d.n()
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}

	var components []Component
	stack := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if label[s] >= 0 {
			continue
		}
		id := len(components)
		comp := Component{ID: id, StronglyConnected: !g.Directed()}

		label[s] = id
		stack = append(stack[:0], s)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp.Nodes = append(comp.Nodes, d.ids[v])
			for _, w := range d.und[v] {
				if label[w] < 0 {
					label[w] = id
					stack = append(stack, w)
				}
			}
		}
		components = append(components, comp)
	}

	attachEdges(g, components, label)
	return components, nil
}

// attachEdges fills Component.Edges with every edge whose endpoints share a
// component label.
func attachEdges(g *graph.Graph, components []Component, label []int) {
	for _, e := range g.Edges() {
		cu, cv := label[g.Index(e.Source)], label[g.Index(e.Target)]
		if cu == cv {
			components[cu].Edges = append(components[cu].Edges, e.ID)
		}
	}
}

// LargestComponentSize returns the node count of the biggest component.
func LargestComponentSize(components []Component) int {
	largest := 0
	for _, c := range components {
		largest = max(largest, len(c.Nodes))
	}
	return largest
}
