package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-graphanalytics/pkg/analysis"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const pathGraphJSON = `{
  "directed": false,
  "nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}],
  "edges": [
    {"id": "ab", "source": "a", "target": "b", "weight": 2},
    {"id": "bc", "source": "b", "target": "c", "weight": 3}
  ]
}`

func TestKindsCommand(t *testing.T) {
	out, err := execute(t, "kinds")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(analysis.AllTypes()))
	assert.Contains(t, lines, "PageRank (damping, max_iterations)")
	assert.Contains(t, lines, "MaximumFlow (source, target)")
	assert.Contains(t, lines, "KCore (k)")
	assert.Contains(t, lines, "DegreeCentrality")
}

func TestAnalyzeCommand_JSONGraph(t *testing.T) {
	path := writeFile(t, "graph.json", pathGraphJSON)

	out, err := execute(t, "analyze", path, "--type", "DijkstraShortestPath", "--source", "a", "--target", "c")
	require.NoError(t, err)

	var res analysis.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Data.Paths, 1)
	assert.Equal(t, []string{"a", "b", "c"}, res.Data.Paths[0].Nodes)
	assert.Equal(t, 5.0, res.Data.Paths[0].Weight)
	assert.Equal(t, 3, res.Statistics.NodeCount)
}

func TestAnalyzeCommand_YAMLGraph(t *testing.T) {
	path := writeFile(t, "graph.yaml", `
directed: true
nodes:
  - id: a
  - id: b
  - id: c
edges:
  - {id: ab, source: a, target: b}
  - {id: ba, source: b, target: a}
  - {id: bc, source: b, target: c}
`)

	out, err := execute(t, "analyze", path, "--type", "StronglyConnectedComponents", "--compact")
	require.NoError(t, err)

	var res analysis.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, analysis.DataComponents, res.Data.Kind)
	assert.Len(t, res.Data.Components, 2)
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(out), "\n")+1, "compact output is one line")
}

func TestAnalyzeCommand_Errors(t *testing.T) {
	path := writeFile(t, "graph.json", pathGraphJSON)

	_, err := execute(t, "analyze", path, "--type", "NetworkEvolution")
	assert.ErrorIs(t, err, analysis.ErrUnsupportedAnalysis)

	_, err = execute(t, "analyze", path, "--type", "PageRank", "--damping", "2")
	assert.ErrorIs(t, err, analysis.ErrInvalidParameter)

	_, err = execute(t, "analyze", filepath.Join(t.TempDir(), "missing.json"), "--type", "Radius", "--damping", "0")
	assert.Error(t, err)

	dangling := writeFile(t, "bad.json", `{"nodes": [{"id": "a"}], "edges": [{"source": "a", "target": "b"}]}`)
	_, err = execute(t, "analyze", dangling, "--type", "Radius")
	assert.ErrorContains(t, err, "load graph")
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench",
		"--nodes", "60",
		"--edges", "150",
		"--kinds", "DegreeCentrality,KCore,MaximumFlow,NetworkSummary",
		"--metrics",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "📊 Benchmark 1: DegreeCentrality")
	assert.Contains(t, out, "📊 Benchmark 4: NetworkSummary")
	assert.Contains(t, out, "4 cached results")
	assert.Contains(t, out, `graphanalytics_cache_hits_total{kind="KCore"} 1`)
	assert.Contains(t, out, "Benchmark complete!")
}

func TestBenchCommand_UnknownKind(t *testing.T) {
	_, err := execute(t, "bench", "--nodes", "10", "--edges", "10", "--kinds", "Bogus", "--metrics=false")
	assert.ErrorIs(t, err, analysis.ErrUnsupportedAnalysis)
}

func TestRandomGraph(t *testing.T) {
	nodes, edges := randomGraph(20, 50, 7)
	again, againEdges := randomGraph(20, 50, 7)

	require.Len(t, nodes, 20)
	require.Len(t, edges, 50)
	assert.Equal(t, nodes, again)
	assert.Equal(t, edges, againEdges)
	for _, e := range edges {
		assert.NotEqual(t, e.Source, e.Target)
		assert.Greater(t, e.Weight, 0.0)
	}

	single, none := randomGraph(1, 5, 7)
	assert.Len(t, single, 1)
	assert.Empty(t, none)
}
