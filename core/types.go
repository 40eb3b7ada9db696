// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrEmptyMatrix indicates that the weight matrix has no rows.
	ErrEmptyMatrix = errors.New("core: weight matrix is empty")

	// ErrNonSquare indicates that a row of the weight matrix has the wrong length.
	ErrNonSquare = errors.New("core: weight matrix is not square")

	// ErrOrderMismatch indicates that the matrix order differs from the expected vertex count.
	ErrOrderMismatch = errors.New("core: matrix order does not match vertex count")

	// ErrNegativeID indicates a negative graph identifier.
	ErrNegativeID = errors.New("core: graph id is negative")

	// ErrVertexOutOfRange indicates a vertex index outside [0, N).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")
)

// Arc is one outgoing edge in an adjacency list.
type Arc struct {
	// To is the head vertex index.
	To int

	// Weight is the strictly positive edge cost.
	Weight uint64
}

// Graph is an immutable weighted directed graph over vertices 0..N-1.
//
// A Graph is safe for concurrent reads: nothing mutates it after NewGraph returns.
type Graph struct {
	id      int
	weights [][]uint64 // private copy of the submitted matrix
	adj     [][]Arc    // adj[u] lists u's arcs in ascending To order
	arcs    int
}
