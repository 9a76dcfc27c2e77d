package listquery

// Meta is pagination metadata for one page of a list.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewMeta computes pagination metadata. TotalPages is 0 when total is 0,
// otherwise ceil(total/limit). Page is passed through unchanged, even past
// the last page. A limit below 1 is treated as 1.
func NewMeta(page, limit int, total int64) Meta {
	if limit < 1 {
		limit = 1
	}
	if total < 0 {
		total = 0
	}

	totalPages := total / int64(limit)
	if total%int64(limit) > 0 {
		totalPages++
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(totalPages),
	}
}

// HasNext reports whether a page follows this one.
func (m Meta) HasNext() bool {
	return m.Page < m.TotalPages
}
