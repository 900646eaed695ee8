package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Unreachable is the sentinel cost of a finish that cannot be reached.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilAdjacency indicates that a nil *adjacency.Map was passed in.
	ErrNilAdjacency = errors.New("dijkstra: adjacency map is nil")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Result is the outcome of one ShortestPath query.
//
// Cost    – total weight of Path, or Unreachable.
// Path    – vertices from start to finish inclusive; empty when unreachable.
// Settled – number of vertices whose cost was finalized, start included.
type Result struct {
	Cost    int64
	Path    []gridgraph.VertexID
	Settled int
}

// Reachable reports whether a route was found.
func (r Result) Reachable() bool { return r.Cost != Unreachable }

// Options configures ShortestPath.
//
// MaxCost – vertices whose tentative cost would exceed MaxCost are not
//
//	explored. Must be ≥ 0. Default is Unreachable (no cap).
type Options struct {
	MaxCost int64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxCost caps exploration at max. A finish beyond the cap is reported
// as unreachable.
// Panics with ErrBadMaxCost if max is negative.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns Options with no cost cap.
func DefaultOptions() Options {
	return Options{MaxCost: Unreachable}
}
