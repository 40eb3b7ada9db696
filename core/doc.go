// SPDX-License-Identifier: MIT

// Package core defines the immutable Graph submitted for ranking: an identifier,
// a square matrix of non-negative integer weights, and the adjacency lists
// derived from it.
//
// Weight semantics:
//
//   - A stored weight of 0 means "no edge". It is never a zero-cost edge.
//   - The diagonal is ignored; self-loops are never traversed.
//   - Every vertex count N is fixed by the caller; all graphs in a run share it.
//
// Adjacency lists are built once in NewGraph, in ascending neighbor order, so
// neighbor iteration is a plain restartable slice walk and yields exactly the
// order a row scan of the matrix would.
//
// Complexity:
//
//   - NewGraph: O(N²) time and space (matrix copy + row scan).
//   - Neighbors: O(1), returns the prebuilt slice.
//   - Weight:   O(1).
//
// Errors:
//
//	ErrEmptyMatrix  - the matrix has no rows.
//	ErrNonSquare    - some row length differs from the row count.
//	ErrOrderMismatch - the matrix order differs from the expected vertex count.
//	ErrNegativeID   - the graph identifier is negative.
package core
