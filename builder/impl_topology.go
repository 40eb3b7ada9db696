// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodCycle        = "Cycle"
	methodRandomSparse = "RandomSparse"
	minCycleVertices   = 2
	probMin            = 0.0
	probMax            = 1.0
)

// Path emits i-1 → i for i = 1..n-1 in increasing order.
func Path() Constructor {
	return func(m [][]uint64, cfg builderConfig) error {
		for i := 1; i < len(m); i++ {
			cfg.set(m, i-1, i, cfg.weight())
		}

		return nil
	}
}

// Cycle emits Path followed by the closing arc n-1 → 0.
func Cycle() Constructor {
	return func(m [][]uint64, cfg builderConfig) error {
		n := len(m)
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		if err := Path()(m, cfg); err != nil {
			return err
		}
		cfg.set(m, n-1, 0, cfg.weight())

		return nil
	}
}

// Star emits 0 → i for i = 1..n-1.
func Star() Constructor {
	return func(m [][]uint64, cfg builderConfig) error {
		for i := 1; i < len(m); i++ {
			cfg.set(m, 0, i, cfg.weight())
		}

		return nil
	}
}

// Complete emits u → v for every ordered pair u ≠ v, row by row.
func Complete() Constructor {
	return func(m [][]uint64, cfg builderConfig) error {
		for u := range m {
			for v := range m {
				if u != v {
					cfg.set(m, u, v, cfg.weight())
				}
			}
		}

		return nil
	}
}

// RandomSparse emits each ordered pair u ≠ v independently with probability p.
// Trials run row by row, so a fixed seed yields a fixed matrix. An RNG is
// required when 0 < p < 1.
func RandomSparse(p float64) Constructor {
	return func(m [][]uint64, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for u := range m {
			for v := range m {
				if u == v {
					continue
				}
				if p < probMax && (p == probMin || cfg.rng.Float64() >= p) {
					continue
				}
				cfg.set(m, u, v, cfg.weight())
			}
		}

		return nil
	}
}
