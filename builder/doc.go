// SPDX-License-Identifier: MIT

// Package builder generates deterministic weight matrices in the format
// core.NewGraph consumes: N×N, non-negative, 0 meaning "no edge".
//
// One orchestrator, BuildMatrix(n, opts, cons...), allocates an all-zero
// matrix and applies each Constructor in order. Later constructors overwrite
// entries written by earlier ones, so topologies compose predictably.
//
// Constructors:
//
//   - Path():            i-1 → i for i = 1..n-1.
//   - Cycle():           Path plus n-1 → 0 (n ≥ 2).
//   - Star():            0 → i for i = 1..n-1.
//   - Complete():        u → v for every u ≠ v.
//   - RandomSparse(p):   u → v with independent probability p (needs an RNG).
//
// Options:
//
//   - WithSeed / WithRand: RNG for RandomSparse and random weight functions.
//   - WithWeightFn:        weight policy; default is the constant 1.
//   - WithSymmetric:       every emitted arc u → v also writes v → u.
//
// Determinism: same n, options, seed and constructor order ⇒ identical matrix.
// Constructors return sentinel errors; only option constructors panic.
package builder
