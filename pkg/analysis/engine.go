// Package analysis dispatches analysis kinds against the loaded graph and
// caches their results until the next load.
package analysis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/dd0wney/cluso-graphanalytics/pkg/config"
	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
	"github.com/dd0wney/cluso-graphanalytics/pkg/logging"
	"github.com/dd0wney/cluso-graphanalytics/pkg/metrics"
)

const tracerName = "github.com/dd0wney/cluso-graphanalytics/pkg/analysis"

// Engine owns one loaded graph and the results computed against it.
//
// Thread Safety: all methods are safe for concurrent use. LoadGraph replaces
// the graph under the write lock; Analyze reads a snapshot and writes the
// cache only after a computation finishes.
type Engine struct {
	mu         sync.RWMutex
	g          *graph.Graph
	props      *graph.PropertyCache
	generation uint64
	cache      map[Kind]*Result

	// flight collapses concurrent misses for the same generation and kind.
	flight   singleflight.Group
	handlers map[Type]handler

	cfg     *config.Config
	logger  logging.Logger
	metrics *metrics.Registry
	tracer  trace.Tracer
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics records into r instead of the default registry.
func WithMetrics(r *metrics.Registry) Option {
	return func(e *Engine) {
		e.metrics = r
	}
}

// WithTracerProvider sets the provider spans are created from.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) {
		if tp != nil {
			e.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithConfig replaces the default configuration.
func WithConfig(cfg *config.Config) Option {
	return func(e *Engine) {
		if cfg != nil {
			e.cfg = cfg
		}
	}
}

// NewEngine creates an engine with no graph loaded.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		cache:    make(map[Kind]*Result),
		handlers: defaultHandlers(),
		cfg:      config.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.DefaultLogger()
	}
	e.logger = e.logger.With(logging.Component("analysis"))
	if e.metrics == nil && e.cfg.Metrics.Enabled {
		e.metrics = metrics.DefaultRegistry()
	}
	if e.tracer == nil {
		e.tracer = otel.GetTracerProvider().Tracer(tracerName)
	}
	return e
}

// LoadGraph builds a graph from the records and replaces the current one.
func (e *Engine) LoadGraph(nodes []graph.Node, edges []graph.Edge, directed bool) error {
	return e.LoadGraphContext(context.Background(), nodes, edges, directed)
}

// LoadGraphContext is LoadGraph with a parent context for tracing. On
// failure the previously loaded graph and its cached results are kept.
func (e *Engine) LoadGraphContext(ctx context.Context, nodes []graph.Node, edges []graph.Edge, directed bool) error {
	_, span := e.tracer.Start(ctx, "analysis.LoadGraph", trace.WithAttributes(
		attribute.Int("graph.node_records", len(nodes)),
		attribute.Int("graph.edge_records", len(edges)),
		attribute.Bool("graph.directed", directed),
	))
	defer span.End()

	start := time.Now()
	g, err := graph.Build(nodes, edges, directed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if e.metrics != nil {
			e.metrics.RecordGraphLoad(err, time.Since(start), 0, 0)
		}
		e.logger.Warn("graph load rejected, keeping previous graph",
			logging.NodeCount(len(nodes)),
			logging.EdgeCount(len(edges)),
			logging.Error(err),
		)
		return err
	}
	props := graph.NewPropertyCache(g)

	e.mu.Lock()
	e.g, e.props = g, props
	e.generation++
	gen := e.generation
	clear(e.cache)
	e.mu.Unlock()

	elapsed := time.Since(start)
	if e.metrics != nil {
		e.metrics.RecordGraphLoad(nil, elapsed, g.NodeCount(), g.EdgeCount())
		e.metrics.SetCacheEntries(0)
	}
	span.SetAttributes(attribute.Int64("graph.generation", int64(gen)))
	e.logger.Info("graph loaded",
		logging.NodeCount(g.NodeCount()),
		logging.EdgeCount(g.EdgeCount()),
		logging.Directed(directed),
		logging.Generation(gen),
		logging.Latency(elapsed),
	)
	return nil
}

// Analyze returns the result for kind, computing it on a cache miss.
func (e *Engine) Analyze(ctx context.Context, kind Kind) (*Result, error) {
	_, span := e.tracer.Start(ctx, "analysis.Analyze", trace.WithAttributes(
		attribute.String("analysis.kind", string(kind.Type)),
	))
	defer span.End()

	res, hit, err := e.analyze(kind)
	span.SetAttributes(attribute.Bool("analysis.cache_hit", hit))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("graph.nodes", res.Statistics.NodeCount))
	return res, nil
}

func (e *Engine) analyze(kind Kind) (*Result, bool, error) {
	if _, ok := e.handlers[kind.Type]; !ok {
		return nil, false, fmt.Errorf("%w: %q", ErrUnsupportedAnalysis, kind.Type)
	}
	ac := e.cfg.Analysis
	kind = kind.withDefaults(ac.DefaultDamping, ac.MaxIterations, ac.DefaultKatzAlpha)
	if err := kind.Validate(); err != nil {
		return nil, false, err
	}

	e.mu.RLock()
	g, props, gen := e.g, e.props, e.generation
	cached, ok := e.cache[kind]
	e.mu.RUnlock()

	if g == nil {
		return nil, false, ErrNoGraph
	}
	label := string(kind.Type)
	if ok {
		if e.metrics != nil {
			e.metrics.RecordCacheLookup(label, true)
		}
		e.logger.Debug("analysis served from cache", logging.Analysis(kind.String()), logging.CacheHit(true))
		return cached, true, nil
	}
	if e.metrics != nil {
		e.metrics.RecordCacheLookup(label, false)
	}

	v, err, _ := e.flight.Do(kind.flightKey(gen), func() (any, error) {
		return e.compute(g, props, gen, kind)
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*Result), false, nil
}

func (e *Engine) compute(g *graph.Graph, props *graph.PropertyCache, gen uint64, kind Kind) (*Result, error) {
	req := &request{
		g:           g,
		props:       props,
		kind:        kind,
		opts:        e.cfg.Analysis.AlgorithmOptions(),
		tolerance:   e.cfg.Analysis.Tolerance,
		labelRounds: e.cfg.Analysis.LabelPropagationRounds,
		params:      kind.Parameters(),
	}

	timer := logging.StartTimer(e.logger, "analysis computed",
		logging.Analysis(kind.String()),
		logging.NodeCount(g.NodeCount()),
		logging.CacheHit(false),
	)
	data, err := e.handlers[kind.Type](req)
	elapsed := timer.Elapsed()
	if e.metrics != nil {
		e.metrics.RecordAnalysis(string(kind.Type), err, elapsed)
	}
	if err != nil {
		timer.EndError(err)
		return nil, err
	}
	annotate(props, kind.Type, data)

	res := &Result{
		ID:            uuid.NewString(),
		Kind:          kind,
		Data:          data,
		Statistics:    computeStatistics(g, props),
		ExecutionTime: elapsed,
		Parameters:    req.params,
		ComputedAt:    time.Now(),
	}

	e.mu.Lock()
	stored := e.generation == gen
	if stored {
		e.cache[kind] = res
	}
	size := len(e.cache)
	e.mu.Unlock()

	if e.metrics != nil {
		e.metrics.SetCacheEntries(size)
	}
	timer.End(logging.Bool("cached", stored))
	return res, nil
}

// Graph returns the loaded graph, or nil before the first load.
func (e *Engine) Graph() *graph.Graph {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.g
}

// Properties returns the property cache of the loaded graph.
func (e *Engine) Properties() *graph.PropertyCache {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.props
}

// Generation counts successful loads.
func (e *Engine) Generation() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.generation
}

// CacheSize returns the number of cached results.
func (e *Engine) CacheSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}

// Kinds lists the analysis types with a registered handler.
func (e *Engine) Kinds() []Type {
	kinds := make([]Type, 0, len(e.handlers))
	for _, t := range typeOrder {
		if _, ok := e.handlers[t]; ok {
			kinds = append(kinds, t)
		}
	}
	return kinds
}
