package transaction

import (
	"fmt"

	"expensetracker/internal/shared/apperr"
)

const DefaultPerPage = 10

// Page sizes are restricted to a fixed menu so a single request can
// never demand an unbounded result set.
var allowedPerPage = map[int]bool{10: true, 20: true, 50: true, 100: true}

// PageRequest is a validated 1-indexed page selection.
type PageRequest struct {
	Page    int
	PerPage int
}

// NewPageRequest applies defaults (page 1, 10 per page) and rejects
// out-of-menu page sizes rather than silently accepting them.
func NewPageRequest(page, perPage int) (PageRequest, error) {
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return PageRequest{}, apperr.BadRequest(fmt.Sprintf("invalid page %d", page))
	}
	if perPage == 0 {
		perPage = DefaultPerPage
	}
	if !allowedPerPage[perPage] {
		return PageRequest{}, apperr.BadRequest(fmt.Sprintf("perPage must be one of 10, 20, 50, 100; got %d", perPage))
	}
	return PageRequest{Page: page, PerPage: perPage}, nil
}

// Offset is the number of rows to skip for this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Pagination is the envelope returned with every listing page. Total is
// the filtered row count regardless of the page requested.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPagination computes the envelope; totalPages = ceil(total/perPage).
func NewPagination(req PageRequest, total int64) Pagination {
	perPage := int64(req.PerPage)
	return Pagination{
		Page:       req.Page,
		PerPage:    req.PerPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}
}

// Page couples one page of rows with its pagination envelope.
type ListPage struct {
	Data       []*Transaction `json:"data"`
	Pagination Pagination     `json:"pagination"`
}
