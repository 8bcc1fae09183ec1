package books

import (
	"context"
	"database/sql"
	"strconv"
)

// List returns up to f.Limit books starting at f.Offset in insertion order,
// optionally restricted to one author. Limit and offset go to the database as
// given; a limit of 0 legitimately returns an empty page.
func List(ctx context.Context, db *sql.DB, f ListFilter) ([]Book, error) {
	q := selectBook
	args := []any{}
	if f.AuthorID != nil {
		args = append(args, *f.AuthorID)
		q += ` WHERE b.author_id = $1`
	}
	args = append(args, f.Limit)
	q += ` ORDER BY b.created_at LIMIT $` + strconv.Itoa(len(args))
	args = append(args, f.Offset)
	q += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID,
			&b.AuthorFirstName, &b.AuthorLastName, &b.AuthorAge,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
