// Package paging computes the (skip, limit) window and page count for
// paginated catalog and favorites responses.
package paging

import "strconv"

// ParseParam parses a positive-integer query parameter. Absent,
// malformed, zero or negative values all come back as 0 so the window
// constructor substitutes the caller's default.
func ParseParam(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// Window is a validated page request.
type Window struct {
	Page  int
	Limit int
}

// NewWindow clamps page to >= 1 and substitutes defaultLimit for a
// missing or invalid limit.
func NewWindow(page, limit, defaultLimit int) Window {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return Window{Page: page, Limit: limit}
}

// Skip is the number of items preceding this page.
func (w Window) Skip() int64 {
	return int64(w.Page-1) * int64(w.Limit)
}

// TotalPages is ceil(total/limit), zero when total is zero. The same
// arithmetic is reported even when a caller bypasses the window with
// all=true, keeping one numeric contract across both modes.
func (w Window) TotalPages(total int64) int64 {
	if total <= 0 {
		return 0
	}
	pages := total / int64(w.Limit)
	if total%int64(w.Limit) != 0 {
		pages++
	}
	return pages
}
