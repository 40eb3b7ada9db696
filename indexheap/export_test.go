package indexheap

import "fmt"

// CheckInvariants verifies heap order and that pos is the exact inverse of
// the slot→key mapping. Exported for the external test package only.
func CheckInvariants(h *Heap) error {
	for i := 1; i < len(h.items); i++ {
		parent := (i - 1) / 2
		if h.items[parent].priority > h.items[i].priority {
			return fmt.Errorf("heap order broken at slot %d (parent %d)", i, parent)
		}
	}
	occupied := 0
	for key, slot := range h.pos {
		if slot == absent {
			continue
		}
		occupied++
		if slot >= len(h.items) || h.items[slot].key != key {
			return fmt.Errorf("pos[%d]=%d does not point back to key %d", key, slot, key)
		}
	}
	if occupied != len(h.items) {
		return fmt.Errorf("pos has %d occupied keys, heap has %d entries", occupied, len(h.items))
	}

	return nil
}
