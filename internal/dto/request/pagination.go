package request

import "math"

// ListRequest selects an ordered window over a mirrored collection.
// A zero PerPage returns the whole collection.
type ListRequest struct {
	Page    int    `json:"page" validate:"omitempty,min=1"`
	PerPage int    `json:"per_page" validate:"omitempty,min=1,max=100"`
	Sort    string `json:"sort"`
}

// Offset is the index of the first item on the page. It saturates instead of
// overflowing for very large page numbers.
func (p ListRequest) Offset() int {
	limit := p.Limit()
	if p.Page < 1 || limit == 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (p.Page - 1) * limit
}

func (p ListRequest) Limit() int {
	if p.PerPage < 1 {
		return 0
	}
	if p.PerPage > 100 {
		return 100
	}
	return p.PerPage
}

// Window returns the [start, end) bounds of the requested page within a
// collection of the given length.
func (p ListRequest) Window(total int) (int, int) {
	limit := p.Limit()
	if limit == 0 {
		return 0, total
	}
	start := min(p.Offset(), total)
	end := start + min(limit, total-start)
	return start, end
}
