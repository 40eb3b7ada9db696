// SPDX-License-Identifier: MIT

package core

import "fmt"

// NewGraph validates weights as an N×N matrix and builds an immutable Graph
// with the given arrival id. The matrix is copied; later changes by the
// caller are not observed.
//
// Zero entries and the diagonal produce no arcs.
func NewGraph(id int, weights [][]uint64) (*Graph, error) {
	if id < 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", id, ErrNegativeID)
	}
	n := len(weights)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}

	g := &Graph{
		id:      id,
		weights: make([][]uint64, n),
		adj:     make([][]Arc, n),
	}
	for u, row := range weights {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", u, len(row), n, ErrNonSquare)
		}
		g.weights[u] = append(make([]uint64, 0, n), row...)

		for v, w := range row {
			if w == 0 || u == v {
				continue
			}
			g.adj[u] = append(g.adj[u], Arc{To: v, Weight: w})
			g.arcs++
		}
	}

	return g, nil
}

// NewGraphOrder is NewGraph with an additional check that the matrix has
// exactly order rows. The dispatcher uses it to enforce the shared N.
func NewGraphOrder(id, order int, weights [][]uint64) (*Graph, error) {
	if len(weights) != order {
		return nil, fmt.Errorf("got %d rows, want %d: %w", len(weights), order, ErrOrderMismatch)
	}

	return NewGraph(id, weights)
}

// ID returns the arrival identifier assigned at submission.
func (g *Graph) ID() int { return g.id }

// Order returns the vertex count N.
func (g *Graph) Order() int { return len(g.adj) }

// ArcCount returns the number of traversable arcs (nonzero, off-diagonal entries).
func (g *Graph) ArcCount() int { return g.arcs }

// Weight returns the stored matrix entry for u→v; 0 means no edge.
func (g *Graph) Weight(u, v int) (uint64, error) {
	if !g.valid(u) || !g.valid(v) {
		return 0, fmt.Errorf("Weight(%d,%d): %w", u, v, ErrVertexOutOfRange)
	}

	return g.weights[u][v], nil
}

// Neighbors returns u's outgoing arcs in ascending neighbor order.
// The returned slice is shared and must not be modified.
func (g *Graph) Neighbors(u int) ([]Arc, error) {
	if !g.valid(u) {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrVertexOutOfRange)
	}

	return g.adj[u], nil
}

func (g *Graph) valid(v int) bool { return v >= 0 && v < len(g.adj) }
