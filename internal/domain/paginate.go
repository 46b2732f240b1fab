package domain

// Paginate applies offset pagination to an already-ordered slice, skipping
// the first from elements and taking at most size. The input ordering is
// preserved; an offset past the end yields an empty slice.
func Paginate[T any](items []T, from, size int) []T {
	if from < 0 {
		from = 0
	}
	if from >= len(items) || size <= 0 {
		return []T{}
	}
	end := from + size
	if end > len(items) {
		end = len(items)
	}
	return items[from:end]
}
