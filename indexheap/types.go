// SPDX-License-Identifier: MIT

package indexheap

import "errors"

// Sentinel errors carried by contract-violation panics.
var (
	// ErrOutOfRange indicates a key outside [0, capacity).
	ErrOutOfRange = errors.New("indexheap: key out of range")

	// ErrDuplicate indicates Insert of a key already present.
	ErrDuplicate = errors.New("indexheap: key already present")

	// ErrCapacity indicates Insert into a full heap.
	ErrCapacity = errors.New("indexheap: capacity exceeded")

	// ErrEmpty indicates ExtractMin on an empty heap.
	ErrEmpty = errors.New("indexheap: heap is empty")

	// ErrNotPresent indicates DecreasePriority of a key not in the heap.
	ErrNotPresent = errors.New("indexheap: key not present")

	// ErrNotDecrease indicates DecreasePriority to a priority that is not strictly smaller.
	ErrNotDecrease = errors.New("indexheap: new priority is not smaller")

	// ErrBadCapacity indicates a negative capacity passed to New.
	ErrBadCapacity = errors.New("indexheap: capacity must be non-negative")
)

// absent marks a key with no heap slot.
const absent = -1

// entry is one (key, priority) pair stored in the heap array.
type entry struct {
	key      int
	priority uint64
}

// Heap is an indexed min-heap keyed by ints in [0, capacity).
// The zero value is an empty heap of capacity 0; use New.
// A Heap is not safe for concurrent use.
type Heap struct {
	items []entry // heap-ordered array
	pos   []int   // key → slot in items, or absent
}
