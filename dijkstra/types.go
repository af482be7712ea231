// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– MaxDistance: optional cap on distances to explore; vertices beyond this are skipped.
//	– Impassable:  edges with weight >= this threshold are treated as walls.
//
// Both are unset by default: the whole reachable graph is explored and every
// edge may be traversed.
//
// Errors (sentinel, raised as panics from the option constructors):
//
//	– ErrBadMaxDistance if MaxDistance < 0.
//	– ErrBadImpassable  if the impassable threshold is <= 0.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/pathkit/core"
)

var (
	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadImpassable indicates an impassable threshold of zero or below,
	// which would wall off every non-negative edge.
	ErrBadImpassable = errors.New("dijkstra: impassable threshold must be positive")
)

// Options configures a single Dijkstra run.
type Options[W core.Weight] struct {
	// MaxDistance stops exploration once the closest frontier entry lies
	// beyond it. Only honoured when set through WithMaxDistance.
	MaxDistance W

	// Impassable marks edges with weight >= Impassable as non-traversable.
	// Only honoured when set through WithImpassable.
	Impassable W

	hasMaxDistance bool
	hasImpassable  bool
}

// Option represents a functional option for configuring Dijkstra.
type Option[W core.Weight] func(*Options[W])

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions[W core.Weight]() Options[W] {
	return Options[W]{}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed d are not explored.
// Panics with ErrBadMaxDistance for negative values and NaN.
func WithMaxDistance[W core.Weight](d W) Option[W] {
	if !(d >= 0) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options[W]) {
		o.MaxDistance = d
		o.hasMaxDistance = true
	}
}

// WithImpassable defines a weight threshold at or above which edges are
// skipped entirely. Panics with ErrBadImpassable for values <= 0 and NaN.
func WithImpassable[W core.Weight](threshold W) Option[W] {
	if !(threshold > 0) {
		panic(ErrBadImpassable.Error())
	}

	return func(o *Options[W]) {
		o.Impassable = threshold
		o.hasImpassable = true
	}
}

// Result is the outcome of Search.
type Result[V comparable, W core.Weight] struct {
	// Path lists vertices from source to target inclusive.
	// Empty when the target is unreachable.
	Path []V

	// Distance is the total weight of Path. Zero when Found is false.
	Distance W

	// Found reports whether the target was reached.
	Found bool

	// Settled counts vertices whose distance was finalised before the run ended.
	Settled int

	// Pushes counts priority queue insertions, stale duplicates included.
	Pushes int
}
