package view

// WindowSize is how many page numbers the pagination control shows at once.
const WindowSize = 5

// PageWindow returns the visible page numbers: a window of up to WindowSize
// pages centered on current, clamped at the start and end of the range.
// Pages are zero-based.
func PageWindow(current, totalPages int) []int {
	if totalPages <= 0 {
		return nil
	}
	if totalPages <= WindowSize {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i
		}
		return pages
	}

	start := current - WindowSize/2
	if start < 0 {
		start = 0
	}
	if start > totalPages-WindowSize {
		start = totalPages - WindowSize
	}

	pages := make([]int, WindowSize)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}
