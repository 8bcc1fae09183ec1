package books

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

const selectBook = `
	SELECT b.id::text, b.title, b.author_id,
	       a.first_name, a.last_name, a.age,
	       b.created_at, b.updated_at
	FROM books b
	JOIN authors a ON a.id = b.author_id`

func scanBook(row *sql.Row) (Book, error) {
	var b Book
	err := row.Scan(&b.ID, &b.Title, &b.AuthorID,
		&b.AuthorFirstName, &b.AuthorLastName, &b.AuthorAge,
		&b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Book{}, ErrNotFound
	}
	if err != nil {
		return Book{}, err
	}
	return b, nil
}

// GetByID fetches one book by its raw path identifier. Anything that is not a
// UUID cannot match a row, so it is a lookup miss rather than a query error.
func GetByID(ctx context.Context, db *sql.DB, id string) (Book, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return Book{}, ErrNotFound
	}
	return scanBook(db.QueryRowContext(ctx, selectBook+` WHERE b.id = $1`, uid.String()))
}

// GetForAuthor fetches a book scoped to an author's collection.
func GetForAuthor(ctx context.Context, db *sql.DB, id string, authorID int64) (Book, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return Book{}, ErrNotFound
	}
	return scanBook(db.QueryRowContext(ctx,
		selectBook+` WHERE b.id = $1 AND b.author_id = $2`, uid.String(), authorID))
}

// Count returns the unfiltered number of books in the store. List responses
// always report this total, regardless of paging or author filters.
func Count(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&n)
	return n, err
}
