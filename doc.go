// SPDX-License-Identifier: MIT

// Package graphrank ranks a stream of weighted directed graphs by the sum of
// shortest-path distances from vertex 0, keeping the K best on a leaderboard.
//
// Under the hood, everything is organized into small packages:
//
//	core/       — immutable Graph built from an N×N weight matrix (0 = no edge)
//	indexheap/  — indexed min-heap with O(1) lookup and decrease-key
//	dijkstra/   — single-source shortest paths and the graph score
//	ranking/    — bounded max-heap leaderboard of the K smallest scores
//	builder/    — deterministic matrix generators for tests and synthetic input
//	cmd/graphrank — the request loop: "N K" header, AggiungiGrafo / TopK commands
//
// Quick ASCII example:
//
//	      4
//	  0 ────► 1        distances from 0: [0 2 1]
//	  │       ▲        score: 0 + 2 + 1 = 3
//	1 │       │ 1
//	  ▼       │
//	  2 ──────┘
//
//	go install github.com/katalvlaran/graphrank/cmd/graphrank@latest
package graphrank
