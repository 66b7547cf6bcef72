package utils

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}

// PageSlice cuts one page out of a list the upstream returned whole.
func PageSlice[T any](items []T, page, perPage int) []T {
	if page < 1 || perPage <= 0 {
		return []T{}
	}
	// page is client input; bound it before multiplying so it cannot wrap
	pages := len(items) / perPage
	if len(items)%perPage != 0 {
		pages++
	}
	if page > pages {
		return []T{}
	}
	offset := CalculateOffset(page, perPage)
	end := offset + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
