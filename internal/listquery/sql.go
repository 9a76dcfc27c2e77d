package listquery

import (
	"fmt"
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Where renders the descriptor's predicate as a PostgreSQL WHERE clause
// with placeholders numbered from argStart. It returns an empty clause
// when there is nothing to constrain.
//
// Column names come from the Resource configuration, never from request
// input, so they are interpolated directly.
func (d Descriptor) Where(argStart int) (string, []any) {
	var (
		clauses []string
		args    []any
		argPos  = argStart
	)

	if d.Search != nil && len(d.Search.Fields) > 0 {
		ors := make([]string, 0, len(d.Search.Fields))
		for _, field := range d.Search.Fields {
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", field, argPos))
		}
		clauses = append(clauses, "("+strings.Join(ors, " OR ")+")")
		args = append(args, "%"+likeEscaper.Replace(d.Search.Term)+"%")
		argPos++
	}

	for _, f := range d.Filters {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", f.Column, argPos))
		args = append(args, f.Value)
		argPos++
	}

	if len(clauses) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

// OrderBy renders the ORDER BY clause. Rows are always tie-broken by id
// descending so pages are stable.
func (d Descriptor) OrderBy() string {
	s := d.Sort
	if s.Column == "" {
		s = DefaultSort
	}

	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}

	if s.Column == "id" {
		return " ORDER BY id " + dir
	}
	return fmt.Sprintf(" ORDER BY %s %s, id DESC", s.Column, dir)
}

// Window renders LIMIT/OFFSET with placeholders starting at argPos.
func (d Descriptor) Window(argPos int) (string, []any) {
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1), []any{d.Limit, d.Offset}
}
