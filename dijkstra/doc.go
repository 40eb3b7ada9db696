// SPDX-License-Identifier: MIT

// Package dijkstra scores a core.Graph by running single-source shortest paths
// from vertex 0 and summing every finite distance.
//
// Overview:
//
//   - Every vertex is enqueued up front in an indexheap.Heap, the source with
//     priority 0 and all others with Unreachable.
//   - The loop extracts the closest vertex; if its distance is Unreachable no
//     remaining vertex can be reached and the run stops early. That is a normal
//     outcome, not an error.
//   - Otherwise each outgoing arc (nonzero weight, off-diagonal) is relaxed; a
//     strictly shorter candidate lowers the neighbor's distance and calls
//     DecreasePriority.
//   - The score is the sum of all finite distances. Unreachable vertices add 0.
//
// Unlike a lazy-decrease-key implementation, the heap never holds more than
// one entry per vertex, so no stale-entry check is needed.
//
// Complexity:
//
//   - Time:  O((V + E) log V), adjacency lists are prebuilt by core.NewGraph.
//   - Space: O(V) for the distance array and the heap.
//
// Errors (sentinel):
//
//   - ErrNilGraph:          Compute was called with a nil graph.
//   - ErrSourceOutOfRange:  the configured source is not a vertex of the graph.
//
// Example usage:
//
//	res, err := dijkstra.Compute(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Score, res.Distances)
package dijkstra
