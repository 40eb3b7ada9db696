// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance recorded for vertices with no path from the source.
const Unreachable uint64 = math.MaxUint64

// Sentinel errors returned by Compute.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Compute.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates a source vertex outside [0, N).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrBadSource indicates a negative source passed to WithSource.
	ErrBadSource = errors.New("dijkstra: source must be non-negative")
)

// Result is the outcome of one shortest-path run.
type Result struct {
	// GraphID is the arrival id of the scored graph.
	GraphID int

	// Distances holds one entry per vertex; Unreachable marks vertices with no path.
	Distances []uint64

	// Score is the sum of all finite distances, saturated at math.MaxUint64.
	// Graphs whose totals reach the cap all score MaxUint64 and tie.
	Score uint64

	// Reached counts vertices with a finite distance, the source included.
	Reached int
}

// Options configures a run.
//
// Source – the vertex distances are measured from. Default 0.
type Options struct {
	Source int
}

// Option is a functional option for Compute.
type Option func(*Options)

// WithSource sets the source vertex. Negative values panic with ErrBadSource;
// values beyond the graph order are reported by Compute as ErrSourceOutOfRange.
func WithSource(v int) Option {
	if v < 0 {
		panic(ErrBadSource.Error())
	}

	return func(o *Options) {
		o.Source = v
	}
}

// DefaultOptions returns the options used when none are given: source vertex 0.
func DefaultOptions() Options {
	return Options{Source: 0}
}
