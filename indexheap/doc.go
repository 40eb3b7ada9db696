// SPDX-License-Identifier: MIT

// Package indexheap implements an indexed binary min-heap over the dense key
// space 0..capacity-1, with O(1) key lookup and a true decrease-key.
//
// The heap stores (key, priority) entries in an array and keeps a position
// table that maps every key to its current array slot (or -1 when absent).
// The table is rewritten on every swap, which is what lets DecreasePriority
// find an entry in O(1) and restore order with a single sift-up.
//
// Invariants:
//
//   - Heap order: priority(parent) ≤ priority(child) for every slot.
//   - pos[items[i].key] == i for every occupied slot i, and pos[k] == -1 for
//     every key k not in the heap.
//
// Sift-down picks the right child only when it is strictly smaller than the
// left one, so equal priorities always resolve to the left subtree and the
// heap shape is deterministic for a given call sequence.
//
// Complexity:
//
//   - Insert, ExtractMin, DecreasePriority: O(log n).
//   - IsEmpty, Len, Contains, Priority:     O(1).
//   - Space: O(capacity).
//
// Contract violations (duplicate insert, overflow, extract on empty, decrease
// of a missing key or to a non-smaller priority) are programming errors and
// panic with one of the package sentinels wrapped in context; use errors.Is
// on the recovered value to classify them.
package indexheap
