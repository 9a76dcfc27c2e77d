package models

import "github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"

// MaxPageSize caps the limit of every list endpoint.
const MaxPageSize = 100

// ListResult is one page of a list together with its pagination metadata.
type ListResult[T any] struct {
	Data       []T            `json:"data"`
	Pagination listquery.Meta `json:"pagination"`
}

// NewListResult pairs a page of items with the descriptor's metadata. A nil
// page is rendered as an empty array.
func NewListResult[T any](items []T, d listquery.Descriptor, total int64) ListResult[T] {
	if items == nil {
		items = []T{}
	}
	return ListResult[T]{
		Data:       items,
		Pagination: d.Meta(total),
	}
}
