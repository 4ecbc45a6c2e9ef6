package analysis

import "errors"

var (
	// ErrUnsupportedAnalysis is returned when no handler is registered for a kind.
	ErrUnsupportedAnalysis = errors.New("unsupported analysis type")

	// ErrInvalidParameter wraps every Kind parameter validation failure.
	ErrInvalidParameter = errors.New("invalid analysis parameter")

	// ErrNoGraph is returned by Analyze before any successful LoadGraph.
	ErrNoGraph = errors.New("no graph loaded")
)
