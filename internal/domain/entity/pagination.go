package entity

import "math"

// PageRequest selects a 1-based page of results.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip. It saturates at math.MaxInt instead of
// overflowing, so an absurd page number yields an empty page.
func (p PageRequest) Offset() int {
	if p.Page < 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}

	return (p.Page - 1) * p.Limit
}

// Normalize clamps the request into [1, maxLimit], using defaultLimit when unset.
func (p PageRequest) Normalize(defaultLimit, maxLimit int) PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}

	return p
}

// Page is one page of a listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewPage wraps items with paging metadata.
func NewPage[T any](items []T, total int, req PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if req.Limit > 0 {
		pages = (total + req.Limit - 1) / req.Limit
	}

	return Page[T]{Items: items, Total: total, Page: req.Page, Limit: req.Limit, TotalPages: pages}
}
