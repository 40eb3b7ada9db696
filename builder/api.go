// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphrank/core"
)

// minVertices is the smallest order BuildMatrix accepts.
const minVertices = 1

// Constructor writes arcs into an n×n matrix using the resolved config.
// Constructors validate early, return sentinel errors and never panic.
type Constructor func(m [][]uint64, cfg builderConfig) error

// BuildMatrix returns an n×n zero matrix with every constructor applied in order.
// Constructor errors are wrapped with "BuildMatrix: %w".
func BuildMatrix(n int, bopts []BuilderOption, cons ...Constructor) ([][]uint64, error) {
	if n < minVertices {
		return nil, fmt.Errorf("BuildMatrix: n=%d < min=%d: %w", n, minVertices, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(bopts...)

	m := make([][]uint64, n)
	for i := range m {
		m[i] = make([]uint64, n)
	}
	for _, c := range cons {
		if err := c(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMatrix: %w", err)
		}
	}

	return m, nil
}

// BuildGraph is BuildMatrix followed by core.NewGraph with the given id.
func BuildGraph(id, n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	m, err := BuildMatrix(n, bopts, cons...)
	if err != nil {
		return nil, err
	}

	return core.NewGraph(id, m)
}
