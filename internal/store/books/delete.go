package books

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// Delete removes a book by id. Books own nothing, so there is no cascade.
func Delete(ctx context.Context, db *sql.DB, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, uid.String())
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// DeleteForAuthor removes a book only if it belongs to the given author.
func DeleteForAuthor(ctx context.Context, db *sql.DB, id string, authorID int64) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := db.ExecContext(ctx,
		`DELETE FROM books WHERE id = $1 AND author_id = $2`, uid.String(), authorID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
