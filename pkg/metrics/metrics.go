package metrics

import (
	"runtime"
	"time"
)

func status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}

// RecordGraphLoad records one LoadGraph attempt. Node and edge gauges move
// only when the load succeeded.
func (r *Registry) RecordGraphLoad(err error, duration time.Duration, nodes, edges int) {
	r.GraphLoadsTotal.WithLabelValues(status(err)).Inc()
	r.GraphLoadDuration.Observe(duration.Seconds())
	if err == nil {
		r.GraphNodes.Set(float64(nodes))
		r.GraphEdges.Set(float64(edges))
	}
}

// RecordAnalysis records a computed (not cached) analysis
func (r *Registry) RecordAnalysis(kind string, err error, duration time.Duration) {
	r.AnalysesTotal.WithLabelValues(kind, status(err)).Inc()
	if err == nil {
		r.AnalysisDuration.WithLabelValues(kind).Observe(duration.Seconds())
	}
}

// RecordCacheLookup counts a hit or a miss for kind
func (r *Registry) RecordCacheLookup(kind string, hit bool) {
	if hit {
		r.CacheHitsTotal.WithLabelValues(kind).Inc()
		return
	}
	r.CacheMissesTotal.WithLabelValues(kind).Inc()
}

// SetCacheEntries publishes the current cache size
func (r *Registry) SetCacheEntries(n int) {
	r.CacheEntries.Set(float64(n))
}

// UpdateSystemMetrics samples uptime, goroutines and heap usage
func (r *Registry) UpdateSystemMetrics() {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	r.UptimeSeconds.Set(time.Since(r.started).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(mem.Alloc))
}
