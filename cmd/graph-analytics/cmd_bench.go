package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-graphanalytics/pkg/analysis"
	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
	"github.com/dd0wney/cluso-graphanalytics/pkg/metrics"
)

var defaultBenchKinds = []string{
	string(analysis.TypePageRank),
	string(analysis.TypeBetweennessCentrality),
	string(analysis.TypeDegreeCentrality),
	string(analysis.TypeClusteringCoefficient),
	string(analysis.TypeConnectedComponents),
	string(analysis.TypeLabelPropagation),
	string(analysis.TypeKCore),
	string(analysis.TypeNetworkSummary),
}

// randomGraph builds n nodes and m edges between distinct random endpoints.
func randomGraph(n, m int, seed uint64) ([]graph.Node, []graph.Edge) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	nodes := make([]graph.Node, n)
	for i := range nodes {
		nodes[i] = graph.Node{
			ID:         fmt.Sprintf("user%d", i),
			Label:      "User",
			Attributes: map[string]string{"trustScore": fmt.Sprint(rng.IntN(1000))},
		}
	}
	if n < 2 {
		return nodes, nil
	}

	edges := make([]graph.Edge, 0, m)
	for i := 0; i < m; i++ {
		from := rng.IntN(n)
		to := rng.IntN(n)
		if from == to {
			to = (to + 1) % n
		}
		edges = append(edges, graph.Edge{
			ID:     fmt.Sprintf("e%d", i),
			Source: nodes[from].ID,
			Target: nodes[to].ID,
			Label:  "CONNECTED_TO",
			Weight: 0.1 + rng.Float64(),
		})
	}
	return nodes, edges
}

// benchKind fills the parameters a type needs from the synthetic graph.
func benchKind(name string, nodeCount int) analysis.Kind {
	k := analysis.Kind{Type: analysis.Type(name), K: 3}
	if nodeCount > 0 {
		k.Source = "user0"
		k.Target = fmt.Sprintf("user%d", nodeCount-1)
	}
	return k
}

func runBench(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ctx := commandContext(cmd)

	fmt.Fprintf(out, "🔥 Graph Analytics Benchmark\n")
	fmt.Fprintf(out, "============================\n\n")
	fmt.Fprintf(out, "Configuration:\n")
	fmt.Fprintf(out, "  Nodes:    %d\n", benchNodes)
	fmt.Fprintf(out, "  Edges:    %d\n", benchEdges)
	fmt.Fprintf(out, "  Directed: %v\n", benchDirected)
	fmt.Fprintf(out, "  Workers:  %d\n\n", cfg.Analysis.Workers)

	reg := metrics.NewRegistry()
	engine := analysis.NewEngine(
		analysis.WithConfig(cfg),
		analysis.WithLogger(logger),
		analysis.WithMetrics(reg),
	)

	fmt.Fprintf(out, "📝 Generating graph...\n")
	start := time.Now()
	nodes, edges := randomGraph(benchNodes, benchEdges, benchSeed)
	if err := engine.LoadGraphContext(ctx, nodes, edges, benchDirected); err != nil {
		return fmt.Errorf("load graph: %w", err)
	}
	fmt.Fprintf(out, "✅ Loaded %d nodes and %d edges in %v\n", len(nodes), len(edges), time.Since(start))

	for i, name := range benchKinds {
		kind := benchKind(name, len(nodes))
		fmt.Fprintf(out, "\n📊 Benchmark %d: %s\n", i+1, kind.Type)

		start = time.Now()
		res, err := engine.Analyze(ctx, kind)
		if err != nil {
			return fmt.Errorf("%s failed: %w", kind.Type, err)
		}
		computed := time.Since(start)

		start = time.Now()
		if _, err := engine.Analyze(ctx, kind); err != nil {
			return fmt.Errorf("%s failed: %w", kind.Type, err)
		}
		fmt.Fprintf(out, "✅ Completed in %v (cached lookup %v)\n", computed, time.Since(start))
		describeResult(out, res)
	}

	fmt.Fprintf(out, "\n🎯 Summary\n")
	fmt.Fprintf(out, "==========\n")
	g := engine.Graph()
	fmt.Fprintf(out, "Graph with %d nodes and %d edges, %d cached results\n",
		g.NodeCount(), g.EdgeCount(), engine.CacheSize())

	if benchMetrics {
		reg.UpdateSystemMetrics()
		if err := printMetrics(out, reg); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "\n✅ Benchmark complete!\n")
	return nil
}

type scoreItem struct {
	id    string
	score float64
}

func topScores(scores map[string]float64, n int) []scoreItem {
	items := make([]scoreItem, 0, len(scores))
	for id, s := range scores {
		items = append(items, scoreItem{id: id, score: s})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].score != items[j].score {
			return items[i].score > items[j].score
		}
		return items[i].id < items[j].id
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}

func describeResult(w io.Writer, res *analysis.Result) {
	d := res.Data
	switch d.Kind {
	case analysis.DataNodeScores, analysis.DataEdgeScores:
		scores := d.NodeScores
		if d.Kind == analysis.DataEdgeScores {
			scores = d.EdgeScores
		}
		fmt.Fprintf(w, "  Top 5 by score:\n")
		for i, item := range topScores(scores, 5) {
			fmt.Fprintf(w, "    %d. %s (score: %.6f)\n", i+1, item.id, item.score)
		}
	case analysis.DataCommunities:
		largest := 0
		for _, c := range d.Communities {
			largest = max(largest, len(c.Nodes))
		}
		fmt.Fprintf(w, "  Communities: %d (largest %d nodes, modularity %s)\n",
			len(d.Communities), largest, res.Parameters["modularity"])
	case analysis.DataComponents:
		fmt.Fprintf(w, "  Components: %s (largest %s nodes)\n", res.Parameters["components"], res.Parameters["largest"])
	case analysis.DataPaths:
		fmt.Fprintf(w, "  Paths: %d\n", len(d.Paths))
	case analysis.DataMetrics:
		m := d.Metrics
		fmt.Fprintf(w, "  Density %.6f, diameter %.0f, radius %.0f, clustering %.4f, assortativity %.4f\n",
			m.Density, m.Diameter, m.Radius, m.ClusteringCoefficient, m.Assortativity)
	case analysis.DataFlow:
		fmt.Fprintf(w, "  Max flow %.4f over %d paths, %d cut edges\n", d.Flow.MaxFlow, len(d.Flow.FlowPaths), len(d.Flow.CutEdges))
	case analysis.DataMotifCounts, analysis.DataTriads, analysis.DataCoreNumbers:
		counts := d.MotifCounts
		if d.Kind == analysis.DataTriads {
			counts = d.Triads
		} else if d.Kind == analysis.DataCoreNumbers {
			counts = d.CoreNumbers
		}
		fmt.Fprintf(w, "  Entries: %d\n", len(counts))
	}
	if it, ok := res.Parameters["iterations"]; ok {
		fmt.Fprintf(w, "  Iterations: %s (converged: %s)\n", it, res.Parameters["converged"])
	}
}

func printMetrics(w io.Writer, reg *metrics.Registry) error {
	families, err := reg.GetPrometheusRegistry().Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	fmt.Fprintf(w, "\n📈 Metrics\n")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(w, "  %s%s %s\n", mf.GetName(), formatLabels(m.GetLabel()), formatValue(mf.GetType(), m))
		}
	}
	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%s=%q", p.GetName(), p.GetValue())
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func formatValue(t dto.MetricType, m *dto.Metric) string {
	switch t {
	case dto.MetricType_COUNTER:
		return fmt.Sprint(m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprint(m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return fmt.Sprintf("count=%d sum=%.6fs", h.GetSampleCount(), h.GetSampleSum())
	default:
		return "?"
	}
}
