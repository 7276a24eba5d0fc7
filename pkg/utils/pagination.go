package utils

// CalculateTotalPages returns how many pages of perPage items hold total.
func CalculateTotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
