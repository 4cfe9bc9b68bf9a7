package pagination

import "math"

// Page is a 1-based page request.
type Page struct {
	Number int // Number is the 1-based page number
	Size   int // Size is the number of records per page
}

// Offset returns the number of records to skip before this page. It
// saturates at math.MaxInt when the product does not fit in an int.
func (p Page) Offset() int {
	if p.Number < 1 || p.Size < 1 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// PastEnd reports whether the page starts at or beyond total records.
func (p Page) PastEnd(total int64) bool {
	return int64(p.Offset()) >= total
}

// Limit returns the maximum number of records in this page.
func (p Page) Limit() int {
	return p.Size
}

// Info represents pagination information for list responses.
type Info struct {
	Total      int64 // Total number of records
	Page       int64 // Current page number (1-based)
	Limit      int64 // Number of records per page
	TotalPages int64 // Total number of pages
}

// NewInfo creates a new Info instance with calculated total pages.
func NewInfo(total, page, limit int64) *Info {
	var totalPages int64
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return &Info{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
