// SPDX-License-Identifier: MIT

package indexheap

import "fmt"

// New returns an empty heap able to hold every key in [0, capacity).
// It panics with ErrBadCapacity if capacity is negative.
func New(capacity int) *Heap {
	if capacity < 0 {
		panic(fmt.Errorf("New(%d): %w", capacity, ErrBadCapacity))
	}
	h := &Heap{
		items: make([]entry, 0, capacity),
		pos:   make([]int, capacity),
	}
	for i := range h.pos {
		h.pos[i] = absent
	}

	return h
}

// Insert adds key with the given priority.
func (h *Heap) Insert(key int, priority uint64) {
	h.checkKey("Insert", key)
	if h.pos[key] != absent {
		panic(fmt.Errorf("Insert(%d): %w", key, ErrDuplicate))
	}
	if len(h.items) == cap(h.items) {
		panic(fmt.Errorf("Insert(%d): %d/%d: %w", key, len(h.items), cap(h.items), ErrCapacity))
	}

	h.items = append(h.items, entry{key: key, priority: priority})
	last := len(h.items) - 1
	h.pos[key] = last
	h.up(last)
}

// ExtractMin removes and returns the key with the smallest priority together
// with that priority.
func (h *Heap) ExtractMin() (int, uint64) {
	if len(h.items) == 0 {
		panic(fmt.Errorf("ExtractMin: %w", ErrEmpty))
	}

	top := h.items[0]
	last := len(h.items) - 1
	h.swap(0, last)
	h.items = h.items[:last]
	h.pos[top.key] = absent
	h.down(0)

	return top.key, top.priority
}

// DecreasePriority lowers key's priority to priority, which must be strictly
// smaller than the current one.
func (h *Heap) DecreasePriority(key int, priority uint64) {
	h.checkKey("DecreasePriority", key)
	i := h.pos[key]
	if i == absent {
		panic(fmt.Errorf("DecreasePriority(%d): %w", key, ErrNotPresent))
	}
	if priority >= h.items[i].priority {
		panic(fmt.Errorf("DecreasePriority(%d): %d >= %d: %w",
			key, priority, h.items[i].priority, ErrNotDecrease))
	}

	h.items[i].priority = priority
	h.up(i)
}

// IsEmpty reports whether the heap holds no entries.
func (h *Heap) IsEmpty() bool { return len(h.items) == 0 }

// Len returns the number of entries.
func (h *Heap) Len() int { return len(h.items) }

// Cap returns the key-space size fixed at construction.
func (h *Heap) Cap() int { return len(h.pos) }

// Contains reports whether key is currently in the heap.
func (h *Heap) Contains(key int) bool {
	return key >= 0 && key < len(h.pos) && h.pos[key] != absent
}

// Priority returns key's current priority and whether key is present.
func (h *Heap) Priority(key int) (uint64, bool) {
	if !h.Contains(key) {
		return 0, false
	}

	return h.items[h.pos[key]].priority, true
}

// up moves slot i toward the root while it is strictly smaller than its parent.
func (h *Heap) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[i].priority >= h.items[parent].priority {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves slot i toward the leaves while a child is strictly smaller.
// The right child is chosen only when strictly smaller than the left.
func (h *Heap) down(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		child := left
		if right := left + 1; right < n && h.items[right].priority < h.items[left].priority {
			child = right
		}
		if h.items[child].priority >= h.items[i].priority {
			return
		}
		h.swap(i, child)
		i = child
	}
}

// swap exchanges two slots and repairs the position table for both keys.
func (h *Heap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].key] = i
	h.pos[h.items[j].key] = j
}

func (h *Heap) checkKey(op string, key int) {
	if key < 0 || key >= len(h.pos) {
		panic(fmt.Errorf("%s(%d): capacity %d: %w", op, key, len(h.pos), ErrOutOfRange))
	}
}
