// SPDX-License-Identifier: MIT

package ranking

import (
	"fmt"
	"strconv"
	"strings"
)

// New returns an empty ranking holding at most k entries. k == 0 yields a
// ranking that drops every offer. A negative k panics with ErrBadCapacity.
func New(k int) *Ranking {
	if k < 0 {
		panic(fmt.Errorf("New(%d): %w", k, ErrBadCapacity))
	}

	return &Ranking{
		k:     k,
		items: make([]Entry, 0, k),
	}
}

// Offer submits a graph's score and reports whether it was admitted.
func (r *Ranking) Offer(score uint64, graphID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := Entry{Score: score, GraphID: graphID}
	if len(r.items) < r.k {
		r.items = append(r.items, e)
		up(r.items, len(r.items)-1)
		return true
	}
	if r.k == 0 || score >= r.items[0].Score {
		return false
	}

	// Evict the root, then insert the candidate.
	last := len(r.items) - 1
	r.items[0] = r.items[last]
	r.items = r.items[:last]
	down(r.items, 0)

	r.items = append(r.items, e)
	up(r.items, len(r.items)-1)

	return true
}

// Snapshot returns the admitted graph ids in leaderboard order.
func (r *Ranking) Snapshot() []int {
	entries := r.Entries()
	ids := make([]int, len(entries))
	for i, e := range entries {
		ids[i] = e.GraphID
	}

	return ids
}

// Entries returns the admitted entries in leaderboard order: ascending score,
// then ascending graph id.
func (r *Ranking) Entries() []Entry {
	r.mu.RLock()
	work := append([]Entry(nil), r.items...)
	r.mu.RUnlock()

	// Heap-sort the copy: repeatedly move the worst entry to the back.
	for end := len(work) - 1; end > 0; end-- {
		work[0], work[end] = work[end], work[0]
		down(work[:end], 0)
	}

	return work
}

// Format renders Snapshot as a single space-separated line without a
// trailing newline; an empty ranking renders as "".
func (r *Ranking) Format() string {
	ids := r.Snapshot()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, " ")
}

// Worst returns the current root, the entry the next admission would evict
// once the ranking is full.
func (r *Ranking) Worst() (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.items) == 0 {
		return Entry{}, false
	}

	return r.items[0], true
}

// Len returns the number of admitted entries.
func (r *Ranking) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// Cap returns K.
func (r *Ranking) Cap() int { return r.k }

// up restores max-heap order from slot i toward the root.
func up(h []Entry, i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h[i].worse(h[parent]) {
			return
		}
		h[i], h[parent] = h[parent], h[i]
		i = parent
	}
}

// down restores max-heap order from slot i toward the leaves.
// The right child is chosen only when strictly worse than the left.
func down(h []Entry, i int) {
	n := len(h)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		child := left
		if right := left + 1; right < n && h[right].worse(h[left]) {
			child = right
		}
		if !h[child].worse(h[i]) {
			return
		}
		h[i], h[child] = h[child], h[i]
		i = child
	}
}
