package graph

import "sync"

// NodeProperties holds per-node degree facts computed at load plus scratch
// slots that analyses may fill in afterwards. Scratch values are a
// convenience copy of the last result and are not authoritative.
type NodeProperties struct {
	Degree    int `json:"degree"`
	InDegree  int `json:"in_degree"`
	OutDegree int `json:"out_degree"`

	Clustering  *float64 `json:"clustering,omitempty"`
	Betweenness *float64 `json:"betweenness,omitempty"`
	Closeness   *float64 `json:"closeness,omitempty"`
	Eigenvector *float64 `json:"eigenvector,omitempty"`
	PageRank    *float64 `json:"pagerank,omitempty"`
	Community   *int     `json:"community,omitempty"`
}

// Slot names a scratch field of NodeProperties.
type Slot int

const (
	SlotClustering Slot = iota
	SlotBetweenness
	SlotCloseness
	SlotEigenvector
	SlotPageRank
)

// PropertyCache stores NodeProperties for every node of one Graph.
type PropertyCache struct {
	mu    sync.RWMutex
	props map[string]*NodeProperties
}

// NewPropertyCache computes degree facts for g. Degree is the length of the
// forward adjacency (out-degree when directed, incident edge ends when
// undirected) and InDegree the length of the reverse adjacency.
func NewPropertyCache(g *Graph) *PropertyCache {
	pc := &PropertyCache{props: make(map[string]*NodeProperties, g.NodeCount())}
	for _, id := range g.NodeIDs() {
		deg := len(g.Neighbors(id))
		pc.props[id] = &NodeProperties{
			Degree:    deg,
			InDegree:  len(g.Predecessors(id)),
			OutDegree: deg,
		}
	}
	return pc
}

// Get returns a copy of the properties for id.
func (pc *PropertyCache) Get(id string) (NodeProperties, bool) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	p, ok := pc.props[id]
	if !ok {
		return NodeProperties{}, false
	}
	return *p, true
}

// Degree returns the load-time degree of id, or 0 for unknown nodes.
func (pc *PropertyCache) Degree(id string) int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	if p, ok := pc.props[id]; ok {
		return p.Degree
	}
	return 0
}

// Len returns the number of nodes tracked.
func (pc *PropertyCache) Len() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return len(pc.props)
}

// Annotate copies scores into the given scratch slot. Unknown IDs are ignored.
func (pc *PropertyCache) Annotate(slot Slot, scores map[string]float64) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	for id, score := range scores {
		p, ok := pc.props[id]
		if !ok {
			continue
		}
		v := score
		switch slot {
		case SlotClustering:
			p.Clustering = &v
		case SlotBetweenness:
			p.Betweenness = &v
		case SlotCloseness:
			p.Closeness = &v
		case SlotEigenvector:
			p.Eigenvector = &v
		case SlotPageRank:
			p.PageRank = &v
		}
	}
}

// SetCommunities records the community index of every listed node.
func (pc *PropertyCache) SetCommunities(membership map[string]int) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	for id, c := range membership {
		if p, ok := pc.props[id]; ok {
			community := c
			p.Community = &community
		}
	}
}
