// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/graphrank/core"
	"github.com/katalvlaran/graphrank/indexheap"
)

// Compute runs shortest paths on g from the configured source (vertex 0 by
// default) and returns the per-vertex distances and the aggregate score.
//
// Compute never mutates g, so scoring the same graph twice yields identical
// results, and distinct graphs may be scored concurrently.
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Source >= g.Order() {
		return nil, fmt.Errorf("%w: source=%d order=%d", ErrSourceOutOfRange, cfg.Source, g.Order())
	}

	// 3) Run the search and fold the distances into a score.
	r := newRunner(g, cfg.Source)
	if err := r.process(); err != nil {
		return nil, err
	}

	res := &Result{GraphID: g.ID(), Distances: r.dist}
	for _, d := range r.dist {
		if d == Unreachable {
			continue
		}
		// Clamp instead of wrapping, so a huge total never outranks a small one.
		if d > Unreachable-res.Score {
			res.Score = Unreachable
		} else {
			res.Score += d
		}
		res.Reached++
	}

	return res, nil
}

// Score is Compute from vertex 0 reduced to the scalar score.
func Score(g *core.Graph) (uint64, error) {
	res, err := Compute(g)
	if err != nil {
		return 0, err
	}

	return res.Score, nil
}

// runner holds the mutable state of a single run.
type runner struct {
	g    *core.Graph
	dist []uint64        // best-known distance per vertex, final once extracted
	pq   *indexheap.Heap // one entry per not-yet-finalized vertex
}

// newRunner sets every distance to Unreachable except the source and
// enqueues all vertices in index order.
func newRunner(g *core.Graph, source int) *runner {
	n := g.Order()
	r := &runner{
		g:    g,
		dist: make([]uint64, n),
		pq:   indexheap.New(n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = Unreachable
	}
	r.dist[source] = 0

	for v := 0; v < n; v++ {
		r.pq.Insert(v, r.dist[v])
	}

	return r
}

// process extracts vertices in distance order until the heap is empty or the
// closest remaining vertex is unreachable.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		u, d := r.pq.ExtractMin()
		if d == Unreachable {
			break
		}
		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax offers every arc u→v as a shortcut to v. d is u's final distance.
func (r *runner) relax(u int, d uint64) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	for _, a := range arcs {
		// Saturate instead of wrapping; such a path is treated as unreachable.
		if a.Weight >= Unreachable-d {
			continue
		}
		cand := d + a.Weight
		if cand >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = cand
		r.pq.DecreasePriority(a.To, cand)
	}

	return nil
}
