// SPDX-License-Identifier: MIT
// Package: pathkit/builder
//
// weight_fn.go - edge weight distributions.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathkit/core"
)

// WeightFn draws one edge weight. rng may be nil when the configuration
// carries no generator; implementations then fall back to a constant.
type WeightFn[W core.Weight] func(rng *rand.Rand) W

// DefaultWeightFn always returns 1.
func DefaultWeightFn[W core.Weight](_ *rand.Rand) W {
	return 1
}

// ConstantWeightFn always returns value. Panics on negative values.
func ConstantWeightFn[W core.Weight](value W) WeightFn[W] {
	if !(value >= 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %v", value))
	}

	return func(_ *rand.Rand) W {
		return value
	}
}

// UniformWeightFn draws from [min, max); integer weights are truncated.
// Returns min when rng is nil or min == max. Panics unless 0 ≤ min ≤ max.
func UniformWeightFn[W core.Weight](min, max W) WeightFn[W] {
	if !(min >= 0 && max >= min) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%v, max=%v", min, max))
	}

	return func(rng *rand.Rand) W {
		if rng == nil || max == min {
			return min
		}

		return min + W(rng.Float64()*float64(max-min))
	}
}

// WithConstantWeight is shorthand for WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight[W core.Weight](w W) Option[W] {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is shorthand for WithWeightFn(UniformWeightFn(min, max)).
func WithUniformWeight[W core.Weight](min, max W) Option[W] {
	return WithWeightFn(UniformWeightFn(min, max))
}
