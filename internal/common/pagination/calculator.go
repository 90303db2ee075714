package pagination

// CalculateOffset calculates the database OFFSET for a 1-based page
// number: offset = (page - 1) * limit.
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages returns ceil(total / limit). An empty result set
// has zero pages.
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
