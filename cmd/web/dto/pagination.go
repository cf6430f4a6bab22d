package dto

import "congress-tracker/cmd/web/query"

// PageResult is one page of a result set.
// Page is 1-based and always within [1, TotalPages]; TotalPages is at
// least 1 even when Total is 0.
type PageResult[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResult computes TotalPages and clamps page into range.
func NewPageResult[T any](items []T, page, pageSize int, total int64) PageResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := query.TotalPages(total, pageSize)
	return PageResult[T]{
		Items:      items,
		Page:       query.ClampPage(page, totalPages),
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
