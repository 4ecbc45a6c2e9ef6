package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if r.GraphLoadsTotal == nil || r.AnalysesTotal == nil || r.CacheHitsTotal == nil {
		t.Error("Counters not initialized")
	}
	if r.GraphNodes == nil || r.CacheEntries == nil || r.GoRoutines == nil {
		t.Error("Gauges not initialized")
	}
	if r.GetPrometheusRegistry() == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestNewRegistry_Independent(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	a.RecordCacheLookup("Diameter", true)

	if got := testutil.ToFloat64(b.CacheHitsTotal.WithLabelValues("Diameter")); got != 0 {
		t.Errorf("Registries should not share state, got %v", got)
	}
}

func TestDefaultRegistry(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordGraphLoad(t *testing.T) {
	r := NewRegistry()

	r.RecordGraphLoad(nil, 5*time.Millisecond, 10, 20)
	r.RecordGraphLoad(errors.New("dangling edge"), time.Millisecond, 99, 99)

	if got := testutil.ToFloat64(r.GraphLoadsTotal.WithLabelValues(StatusSuccess)); got != 1 {
		t.Errorf("success loads = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.GraphLoadsTotal.WithLabelValues(StatusError)); got != 1 {
		t.Errorf("error loads = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.GraphNodes); got != 10 {
		t.Errorf("Failed load should not move node gauge, got %v", got)
	}
	if got := testutil.ToFloat64(r.GraphEdges); got != 20 {
		t.Errorf("edge gauge = %v, want 20", got)
	}

	var metric dto.Metric
	if err := r.GraphLoadDuration.Write(&metric); err != nil {
		t.Fatalf("Failed to write histogram: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 2 {
		t.Errorf("load duration samples = %d, want 2", metric.Histogram.GetSampleCount())
	}
}

func TestRecordAnalysis(t *testing.T) {
	r := NewRegistry()

	r.RecordAnalysis("PageRank", nil, 30*time.Millisecond)
	r.RecordAnalysis("PageRank", nil, 10*time.Millisecond)
	r.RecordAnalysis("PageRank", errors.New("bad damping"), 0)

	if got := testutil.ToFloat64(r.AnalysesTotal.WithLabelValues("PageRank", StatusSuccess)); got != 2 {
		t.Errorf("successful analyses = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.AnalysesTotal.WithLabelValues("PageRank", StatusError)); got != 1 {
		t.Errorf("failed analyses = %v, want 1", got)
	}

	observer, err := r.AnalysisDuration.GetMetricWithLabelValues("PageRank")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	var metric dto.Metric
	if err := observer.(interface{ Write(*dto.Metric) error }).Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 2 {
		t.Errorf("duration samples = %d, want 2", metric.Histogram.GetSampleCount())
	}
}

func TestRecordCacheLookup(t *testing.T) {
	r := NewRegistry()

	r.RecordCacheLookup("KCore", false)
	r.RecordCacheLookup("KCore", true)
	r.RecordCacheLookup("KCore", true)
	r.SetCacheEntries(4)

	if got := testutil.ToFloat64(r.CacheHitsTotal.WithLabelValues("KCore")); got != 2 {
		t.Errorf("hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.CacheMissesTotal.WithLabelValues("KCore")); got != 1 {
		t.Errorf("misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.CacheEntries); got != 4 {
		t.Errorf("entries = %v, want 4", got)
	}
}

func TestUpdateSystemMetrics(t *testing.T) {
	r := NewRegistry()
	r.UpdateSystemMetrics()

	if testutil.ToFloat64(r.GoRoutines) < 1 {
		t.Error("Expected at least one goroutine")
	}
	if testutil.ToFloat64(r.MemoryAllocBytes) <= 0 {
		t.Error("Expected non-zero heap allocation")
	}
}

func TestMetricNames(t *testing.T) {
	r := NewRegistry()
	r.RecordGraphLoad(nil, time.Millisecond, 1, 0)
	r.RecordAnalysis("Radius", nil, time.Millisecond)
	r.RecordCacheLookup("Radius", true)
	r.RecordCacheLookup("Radius", false)

	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	names := make(map[string]bool)
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), Namespace+"_") {
			t.Errorf("Metric %s missing namespace prefix", mf.GetName())
		}
		names[mf.GetName()] = true
	}
	for _, want := range []string{
		"graphanalytics_graph_loads_total",
		"graphanalytics_graph_load_duration_seconds",
		"graphanalytics_graph_nodes",
		"graphanalytics_graph_edges",
		"graphanalytics_analyses_total",
		"graphanalytics_analysis_duration_seconds",
		"graphanalytics_cache_hits_total",
		"graphanalytics_cache_misses_total",
		"graphanalytics_cache_entries",
	} {
		if !names[want] {
			t.Errorf("Metric %s not registered", want)
		}
	}
}

func BenchmarkRecordAnalysis(b *testing.B) {
	r := NewRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.RecordAnalysis("PageRank", nil, time.Millisecond)
	}
}
