package analysis

import (
	"time"

	"github.com/dd0wney/cluso-graphanalytics/pkg/algorithms"
)

// DataKind tags which field of Data is populated.
type DataKind string

const (
	DataNodeScores  DataKind = "node_scores"
	DataEdgeScores  DataKind = "edge_scores"
	DataCommunities DataKind = "communities"
	DataPaths       DataKind = "paths"
	DataComponents  DataKind = "components"
	DataMetrics     DataKind = "network_metrics"
	DataFlow        DataKind = "flow"
	DataMotifCounts DataKind = "motif_counts"
	DataTriads      DataKind = "triadic_census"
	DataCoreNumbers DataKind = "core_numbers"
)

// Data is the payload of a Result. Exactly one field matching Kind is set.
type Data struct {
	Kind        DataKind                   `json:"kind"`
	NodeScores  map[string]float64         `json:"node_scores,omitempty"`
	EdgeScores  map[string]float64         `json:"edge_scores,omitempty"`
	Communities []algorithms.Community     `json:"communities,omitempty"`
	Paths       []algorithms.Path          `json:"paths,omitempty"`
	Components  []algorithms.Component     `json:"components,omitempty"`
	Metrics     *algorithms.NetworkMetrics `json:"metrics,omitempty"`
	Flow        *algorithms.FlowResult     `json:"flow,omitempty"`
	MotifCounts map[string]int             `json:"motif_counts,omitempty"`
	Triads      map[string]int             `json:"triads,omitempty"`
	CoreNumbers map[string]int             `json:"core_numbers,omitempty"`
}

func nodeScores(s map[string]float64) Data { return Data{Kind: DataNodeScores, NodeScores: s} }
func edgeScores(s map[string]float64) Data { return Data{Kind: DataEdgeScores, EdgeScores: s} }

func communities(c []algorithms.Community) Data {
	return Data{Kind: DataCommunities, Communities: c}
}

func paths(p []algorithms.Path) Data { return Data{Kind: DataPaths, Paths: p} }

func components(c []algorithms.Component) Data {
	return Data{Kind: DataComponents, Components: c}
}

func networkMetrics(m *algorithms.NetworkMetrics) Data { return Data{Kind: DataMetrics, Metrics: m} }
func flow(f *algorithms.FlowResult) Data              { return Data{Kind: DataFlow, Flow: f} }
func motifCounts(m map[string]int) Data               { return Data{Kind: DataMotifCounts, MotifCounts: m} }
func triads(t map[string]int) Data                    { return Data{Kind: DataTriads, Triads: t} }
func coreNumbers(c map[string]int) Data               { return Data{Kind: DataCoreNumbers, CoreNumbers: c} }

// Result is one computed analysis. Results are shared between callers once
// cached and must be treated as read-only.
type Result struct {
	ID            string            `json:"id"`
	Kind          Kind              `json:"kind"`
	Data          Data              `json:"data"`
	Statistics    NetworkStatistics `json:"statistics"`
	ExecutionTime time.Duration     `json:"execution_time"`
	Parameters    map[string]string `json:"parameters"`
	ComputedAt    time.Time         `json:"computed_at"`
}
