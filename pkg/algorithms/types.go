package algorithms

// Path is a route between two nodes. Edges may be empty when only the
// distance matters.
type Path struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Nodes  []string `json:"nodes"`
	Edges  []string `json:"edges,omitempty"`
	Length int      `json:"length"`
	Weight float64  `json:"weight"`
}

// Community is one block of a partition with its quality measures.
type Community struct {
	ID            int      `json:"id"`
	Nodes         []string `json:"nodes"`
	Modularity    float64  `json:"modularity"`
	InternalEdges int      `json:"internal_edges"`
	ExternalEdges int      `json:"external_edges"`
	Conductance   float64  `json:"conductance"`
}

// Component is a connected (or strongly connected) node set.
type Component struct {
	ID                int      `json:"id"`
	Nodes             []string `json:"nodes"`
	Edges             []string `json:"edges"`
	StronglyConnected bool     `json:"strongly_connected"`
}

// NetworkMetrics holds whole-graph measures. Analyses fill only the fields
// they compute; NetworkSummary fills all of them.
type NetworkMetrics struct {
	NodeCount             int     `json:"node_count"`
	EdgeCount             int     `json:"edge_count"`
	Density               float64 `json:"density"`
	Diameter              float64 `json:"diameter"`
	Radius                float64 `json:"radius"`
	AveragePathLength     float64 `json:"average_path_length"`
	ClusteringCoefficient float64 `json:"clustering_coefficient"`
	Assortativity         float64 `json:"assortativity"`
	Transitivity          float64 `json:"transitivity"`
	SmallWorldness        float64 `json:"small_worldness"`
}

// IterativeResult carries scores from a power-iteration algorithm.
type IterativeResult struct {
	Scores     map[string]float64
	Iterations int
	Converged  bool
}
