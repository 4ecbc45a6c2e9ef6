package analysis

import (
	"sort"

	"github.com/dd0wney/cluso-graphanalytics/pkg/algorithms"
	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
)

// DegreeBucket counts the nodes with a given degree.
type DegreeBucket struct {
	Degree int `json:"degree"`
	Count  int `json:"count"`
}

// NetworkStatistics is a snapshot of the loaded graph attached to every Result.
type NetworkStatistics struct {
	NodeCount          int            `json:"node_count"`
	EdgeCount          int            `json:"edge_count"`
	AverageDegree      float64        `json:"average_degree"`
	DegreeDistribution []DegreeBucket `json:"degree_distribution"`
	ComponentCount     int            `json:"component_count"`
	LargestComponent   int            `json:"largest_component"`
	Density            float64        `json:"density"`
	AverageClustering  float64        `json:"average_clustering"`
}

func computeStatistics(g *graph.Graph, props *graph.PropertyCache) NetworkStatistics {
	stats := NetworkStatistics{
		NodeCount:         g.NodeCount(),
		EdgeCount:         g.EdgeCount(),
		Density:           algorithms.Density(g),
		AverageClustering: algorithms.AverageClusteringCoefficient(g),
	}

	histogram := make(map[int]int)
	total := 0
	for _, id := range g.NodeIDs() {
		deg := props.Degree(id)
		histogram[deg]++
		total += deg
	}
	if stats.NodeCount > 0 {
		stats.AverageDegree = float64(total) / float64(stats.NodeCount)
	}
	stats.DegreeDistribution = make([]DegreeBucket, 0, len(histogram))
	for deg, count := range histogram {
		stats.DegreeDistribution = append(stats.DegreeDistribution, DegreeBucket{Degree: deg, Count: count})
	}
	sort.Slice(stats.DegreeDistribution, func(i, j int) bool {
		return stats.DegreeDistribution[i].Degree < stats.DegreeDistribution[j].Degree
	})

	if comps, err := algorithms.ConnectedComponents(g); err == nil {
		stats.ComponentCount = len(comps)
		stats.LargestComponent = algorithms.LargestComponentSize(comps)
	}
	return stats
}
