// SPDX-License-Identifier: MIT

// Package ranking keeps the K graphs with the smallest scores seen so far.
//
// The admitted set lives in a bounded binary max-heap whose root is the
// current worst entry. Offer admits unconditionally while fewer than K
// entries are held; once full, a candidate is admitted only if its score is
// strictly smaller than the root's, in which case the root is evicted. A tie
// with the current worst is dropped.
//
// Heap order is (score, graph id): among equal scores the later arrival sits
// nearer the root, so evictions among ties always remove the newest entry.
//
// Snapshot reports ids by ascending score, ties by ascending id (earlier
// arrival first). The heap is only heap-ordered, so Snapshot heap-sorts a
// copy; the ranking itself is left untouched and repeated snapshots without
// an intervening Offer are identical.
//
// Complexity:
//
//   - Offer:    O(log K).
//   - Snapshot: O(K log K) time, O(K) space.
//   - Len, Cap, Worst: O(1).
//
// A Ranking is safe for concurrent use; Offer takes the write lock and the
// read-only methods take the read lock.
package ranking
