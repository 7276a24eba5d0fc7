package response

import "movie-rental/pkg/utils"

type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// PaginationMeta
type PaginationMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

// NewPaginatedResponse wraps one page of a collection of total items. A zero
// perPage means the whole collection is on a single page.
func NewPaginatedResponse[T any](data []T, page, perPage, total int) *PaginatedResponse[T] {
	if perPage == 0 {
		perPage = total
		page = 1
	}
	if page < 1 {
		page = 1
	}

	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: utils.CalculateTotalPages(total, perPage),
		},
	}
}
