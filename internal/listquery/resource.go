// Package listquery turns optional list parameters (page, limit, free-text
// search, per-field filters, sort) into a normalized query descriptor and
// computes pagination metadata from a total count.
//
// Nothing here performs I/O. Malformed input is normalized to defaults and
// never reported as an error, matching the forgiving nature of search and
// filter UIs.
package listquery

// Kind describes how a filter value is interpreted.
type Kind string

const (
	// KindEquality compares the trimmed value as a string.
	KindEquality Kind = "equality"
	// KindBoolean accepts true/false/1/0/yes/no/on/off.
	KindBoolean Kind = "boolean"
	// KindEnum accepts only the values listed on the field.
	KindEnum Kind = "enum"
	// KindInteger accepts base-10 integers, e.g. foreign keys.
	KindInteger Kind = "integer"
)

// Field is one filterable field of a resource.
type Field struct {
	Param  string
	Column string
	Kind   Kind
	Values []string
}

func (f Field) column() string {
	if f.Column != "" {
		return f.Column
	}
	return f.Param
}

// Sort is an ORDER BY column and direction.
type Sort struct {
	Column string
	Desc   bool
}

// DefaultSort orders most recently created rows first.
var DefaultSort = Sort{Column: "created_at", Desc: true}

// Resource is the list configuration of one resource. SearchFields and
// Filters are ordered; descriptor output follows that order.
type Resource struct {
	Name         string
	SearchFields []string
	Filters      []Field
	DefaultLimit int
	MaxLimit     int
	DefaultSort  Sort
	Sortable     []string
}

// NewResource builds a resource whose filters are all plain equality
// fields named after their columns.
func NewResource(name string, searchable, filterable []string, defaultLimit int) Resource {
	filters := make([]Field, 0, len(filterable))
	for _, column := range filterable {
		filters = append(filters, Field{Param: column, Column: column, Kind: KindEquality})
	}

	return Resource{
		Name:         name,
		SearchFields: searchable,
		Filters:      filters,
		DefaultLimit: defaultLimit,
		DefaultSort:  DefaultSort,
	}
}

func (r Resource) defaultLimit() int {
	if r.DefaultLimit < 1 {
		return fallbackLimit
	}
	return r.DefaultLimit
}

func (r Resource) defaultSort() Sort {
	if r.DefaultSort.Column == "" {
		return DefaultSort
	}
	return r.DefaultSort
}

func (r Resource) sortable(column string) bool {
	if column == r.defaultSort().Column {
		return true
	}
	for _, c := range r.Sortable {
		if c == column {
			return true
		}
	}
	return false
}
