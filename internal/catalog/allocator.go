package catalog

import "sort"

// nextID returns the smallest integer >= floor that is absent from existing.
// Ids freed by deletion are reused, keeping each collection dense above its
// floor. An empty collection yields the floor itself.
func nextID(existing []int, floor int) int {
	ids := append([]int(nil), existing...)
	sort.Ints(ids)

	candidate := floor
	for _, id := range ids {
		if id < candidate {
			continue
		}
		if id == candidate {
			candidate++
			continue
		}
		break
	}
	return candidate
}
