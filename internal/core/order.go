package core

// SortIndexes maps each id to its position in the caller-supplied order.
// Duplicate ids keep their first position; ids absent from orderedIDs are
// simply absent from the result and keep whatever sort order they already
// have.
func SortIndexes(orderedIDs []int64) map[int64]int {
	indexes := make(map[int64]int, len(orderedIDs))
	for i, id := range orderedIDs {
		if _, seen := indexes[id]; seen {
			continue
		}
		indexes[id] = i
	}
	return indexes
}
