package indexheap_test

import (
	"fmt"

	"github.com/katalvlaran/graphrank/indexheap"
)

// ExampleHeap_DecreasePriority lowers a key's priority in place.
func ExampleHeap_DecreasePriority() {
	h := indexheap.New(3)
	h.Insert(0, 7)
	h.Insert(1, 3)
	h.Insert(2, 5)

	h.DecreasePriority(0, 1)

	for !h.IsEmpty() {
		k, p := h.ExtractMin()
		fmt.Printf("%d:%d ", k, p)
	}
	fmt.Println()

	// Output:
	// 0:1 1:3 2:5
}
