package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// listPage counts the rows matching d and fetches the requested page. The
// page query is skipped when the offset is already past the last row.
func listPage[T any](
	ctx context.Context,
	db *sql.DB,
	table, columns string,
	d listquery.Descriptor,
	scan func(rowScanner) (T, error),
) ([]T, int64, error) {
	where, args := d.Where(1)

	var total int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	items := []T{}
	if total == 0 || int64(d.Offset) >= total {
		return items, total, nil
	}

	window, windowArgs := d.Window(len(args) + 1)
	query := "SELECT " + columns + " FROM " + table + where + d.OrderBy() + window

	rows, err := db.QueryContext(ctx, query, append(args, windowArgs...)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating %s: %w", table, err)
	}

	return items, total, nil
}

// checkAffected turns a zero-row UPDATE or DELETE into notFound.
func checkAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}

// textArray keeps NOT NULL array columns from receiving NULL.
func textArray(a pq.StringArray) pq.StringArray {
	if a == nil {
		return pq.StringArray{}
	}
	return a
}
