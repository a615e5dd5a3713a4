package helpers

import (
	"net/http"
	"strconv"

	"weddinginvite/internal/domain"
)

// TotalCountHeader carries the number of rows matching an admin list query.
const TotalCountHeader = "X-Total-Count"

// Page size limits for admin lists.
const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// ParsePagination reads page and page_size from the query string. When both
// are absent the list is unpaginated and Limit reports -1. When only one is
// present the other defaults to page 1 or DefaultPageSize; page_size is capped
// at MaxPageSize. A malformed value writes 400 and returns false.
func ParsePagination(w http.ResponseWriter, r *http.Request) (domain.PaginationParams, bool) {
	q := r.URL.Query()
	if !q.Has("page") && !q.Has("page_size") {
		return domain.PaginationParams{}, true
	}
	p := domain.PaginationParams{Page: 1, PageSize: DefaultPageSize}
	if q.Has("page") {
		v, err := strconv.Atoi(q.Get("page"))
		if err != nil || v < 1 {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "page must be a positive integer")
			return domain.PaginationParams{}, false
		}
		p.Page = v
	}
	if q.Has("page_size") {
		v, err := strconv.Atoi(q.Get("page_size"))
		if err != nil || v < 1 {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "page_size must be a positive integer")
			return domain.PaginationParams{}, false
		}
		p.PageSize = min(v, MaxPageSize)
	}
	return p, true
}

// SetTotalCount reports total in the TotalCountHeader response header.
func SetTotalCount(w http.ResponseWriter, total int) {
	w.Header().Set(TotalCountHeader, strconv.Itoa(total))
}
