package logging

import "time"

func String(key, value string) Field         { return Field{key, value} }
func Int(key string, value int) Field         { return Field{key, value} }
func Int64(key string, value int64) Field     { return Field{key, value} }
func Float64(key string, value float64) Field { return Field{key, value} }
func Bool(key string, value bool) Field       { return Field{key, value} }
func Any(key string, value any) Field         { return Field{key, value} }

// Duration renders value with time.Duration.String so both backends agree.
func Duration(key string, value time.Duration) Field {
	return Field{key, value.String()}
}

// Error stores err's message under "error", or nil for a nil error.
func Error(err error) Field {
	if err == nil {
		return Field{"error", nil}
	}
	return Field{"error", err.Error()}
}

// Keys used by the engine and the CLI.
const (
	KeyComponent  = "component"
	KeyAnalysis   = "analysis"
	KeyNodeCount  = "node_count"
	KeyEdgeCount  = "edge_count"
	KeyCacheHit   = "cache_hit"
	KeyDirected   = "directed"
	KeyGeneration = "generation"
	KeyNodeID     = "node_id"
	KeyLatency    = "latency"
)

func Component(name string) Field   { return String(KeyComponent, name) }
func Analysis(kind string) Field    { return String(KeyAnalysis, kind) }
func NodeCount(n int) Field         { return Int(KeyNodeCount, n) }
func EdgeCount(n int) Field         { return Int(KeyEdgeCount, n) }
func CacheHit(hit bool) Field       { return Bool(KeyCacheHit, hit) }
func Directed(directed bool) Field  { return Bool(KeyDirected, directed) }
func Generation(gen uint64) Field   { return Field{KeyGeneration, gen} }
func NodeID(id string) Field        { return String(KeyNodeID, id) }
func Latency(d time.Duration) Field { return Duration(KeyLatency, d) }
