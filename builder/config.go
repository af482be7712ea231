// SPDX-License-Identifier: MIT
// Package: pathkit/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn      = DefaultIDFn ("0","1","2",...)
//   - rng       = nil (no randomness unless seeded)
//   - weightFn  = DefaultWeightFn (constant 1)
//   - symmetric = false

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathkit/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig[W core.Weight] struct {
	idFn      IDFn
	rng       *rand.Rand
	weightFn  WeightFn[W]
	symmetric bool
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies opts in order (later overrides earlier).
func newBuilderConfig[W core.Weight](opts ...Option[W]) builderConfig[W] {
	cfg := builderConfig[W]{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn[W],
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
