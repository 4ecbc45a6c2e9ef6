// Package algorithms implements the structural analyses run against an
// immutable graph.Graph: path finding, centrality, community detection,
// connectivity, network metrics and the advanced analyses (motifs, triadic
// census, k-core, max-flow). Every function only reads the graph.
package algorithms

import (
	"errors"

	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
)

var (
	ErrNodeNotFound  = graph.ErrNodeNotFound
	ErrNegativeCycle = errors.New("negative weight cycle reachable from source")
)

// Default iteration controls shared by the power-iteration algorithms.
const (
	DefaultTolerance       = 1e-6
	DefaultMaxIterations   = 100
	DefaultDamping         = 0.85
	DefaultKatzAlpha       = 0.1
	DefaultLabelPropRounds = 100

	// Per-source sweeps below this node count always run inline.
	DefaultParallelThreshold = 64
)

// Options tunes how an analysis runs. Zero values fall back to defaults.
type Options struct {
	Workers           int
	ParallelThreshold int
	Tolerance         float64
	MaxIterations     int
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers fans per-source sweeps out to n workers.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithParallelThreshold sets the minimum node count for parallel sweeps.
func WithParallelThreshold(n int) Option {
	return func(o *Options) { o.ParallelThreshold = n }
}

// WithTolerance sets the L1 convergence threshold for iterative algorithms.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations caps iterative algorithms.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

func applyOptions(opts []Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ParallelThreshold <= 0 {
		o.ParallelThreshold = DefaultParallelThreshold
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// sweepWorkers returns the worker count for a sweep over n sources.
func (o Options) sweepWorkers(n int) int {
	if o.Workers <= 1 || n < o.ParallelThreshold {
		return 1
	}
	return o.Workers
}
