// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn produces an arc weight from an optional RNG. A result of 0 writes
// "no edge", so policies meant to create arcs should return at least 1.
type WeightFn func(rng *rand.Rand) uint64

// ConstantWeightFn always yields value.
func ConstantWeightFn(value uint64) WeightFn {
	return func(_ *rand.Rand) uint64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max]. Panics unless 1 ≤ min ≤ max.
// With a nil RNG it yields min.
func UniformWeightFn(min, max uint64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) uint64 {
		if rng == nil || max == min {
			return min
		}

		span := max - min
		if span >= math.MaxInt64 {
			// Too wide for Int63n; span+1 cannot wrap since min ≥ 1.
			return min + rng.Uint64()%(span+1)
		}

		return min + uint64(rng.Int63n(int64(span+1)))
	}
}
