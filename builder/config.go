// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// defaultConstWeight is the arc weight when no WeightFn is configured.
const defaultConstWeight = uint64(1)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng       *rand.Rand // nil means "no randomness"
	weightFn  WeightFn
	symmetric bool
}

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts over deterministic defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: ConstantWeightFn(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// set writes w into m[u][v], mirrored when the config is symmetric.
// Diagonal writes are dropped.
func (c builderConfig) set(m [][]uint64, u, v int, w uint64) {
	if u == v {
		return
	}
	m[u][v] = w
	if c.symmetric {
		m[v][u] = w
	}
}

// weight draws the next arc weight.
func (c builderConfig) weight() uint64 {
	return c.weightFn(c.rng)
}
