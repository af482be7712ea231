// SPDX-License-Identifier: MIT
// Package: pathkit/builder
//
// options.go - functional options for BuildGraph.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathkit/core"
)

// Option customizes the builder configuration.
type Option[W core.Weight] func(*builderConfig[W])

// WithIDScheme sets the vertex naming function. Panics on nil.
func WithIDScheme[W core.Weight](fn IDFn) Option[W] {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig[W]) {
		c.idFn = fn
	}
}

// WithRand uses r for every random draw. Panics on nil.
func WithRand[W core.Weight](r *rand.Rand) Option[W] {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig[W]) {
		c.rng = r
	}
}

// WithSeed installs a fresh generator seeded with seed.
func WithSeed[W core.Weight](seed int64) Option[W] {
	return func(c *builderConfig[W]) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn[W core.Weight](fn WeightFn[W]) Option[W] {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig[W]) {
		c.weightFn = fn
	}
}

// WithSymmetric makes every constructor emit v→u next to u→v.
// Grid is always symmetric.
func WithSymmetric[W core.Weight]() Option[W] {
	return func(c *builderConfig[W]) {
		c.symmetric = true
	}
}
