// Package adjacency defines the movement-rule options and the weighted
// directed adjacency map derived from a gridgraph snapshot.
package adjacency

import "github.com/katalvlaran/gridroute/gridgraph"

// WormholeWeight is the fixed cost of travelling through a wormhole.
const WormholeWeight int64 = 1

// Options configures how Build derives edges from a board.
//
// AllowDiagonal       – add the four diagonal neighbors on top of the
//
//	orthogonal ones. Default true.
//
// AllowPassByWormhole – let a wormhole entrance also be left on foot. When
//
//	false, stepping onto an entrance forces the teleport. Default false.
type Options struct {
	AllowDiagonal       bool
	AllowPassByWormhole bool
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithDiagonal enables or disables diagonal moves.
func WithDiagonal(allow bool) Option {
	return func(o *Options) {
		o.AllowDiagonal = allow
	}
}

// WithPassByWormhole enables or disables walking off a wormhole entrance.
func WithPassByWormhole(allow bool) Option {
	return func(o *Options) {
		o.AllowPassByWormhole = allow
	}
}

// WithOptions replaces every setting at once.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

// DefaultOptions returns the default movement rules:
//   - AllowDiagonal:       true
//   - AllowPassByWormhole: false
func DefaultOptions() Options {
	return Options{
		AllowDiagonal:       true,
		AllowPassByWormhole: false,
	}
}

// Resolve applies opts on top of DefaultOptions.
func Resolve(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Arc is one outgoing edge: the destination and the step weight.
type Arc struct {
	To     gridgraph.VertexID
	Weight int64
}

// Map is a sparse weighted directed graph keyed by cell identity.
// Sources and arcs keep insertion order so consumers iterate deterministically.
// A source that is absent has no outgoing edges. A Map is read-only once built.
type Map struct {
	sources []gridgraph.VertexID
	arcs    map[gridgraph.VertexID][]Arc
}
