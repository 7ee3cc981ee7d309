package models

// Pagination reports where a page sits within the full result set.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// NewPagination computes page metadata for a result set of total documents
// split into pages of limit.
func NewPagination(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Current: page, Pages: pages, Total: total}
}
