package books

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nanafox/simple-books-api/internal/api/apperr"
	"github.com/nanafox/simple-books-api/internal/validate"
)

// Update applies the provided attributes to an existing book. Validation runs
// against the would-be result and a failure leaves the stored row unchanged.
func Update(ctx context.Context, db *sql.DB, id string, in UpdateInput) (Book, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return Book{}, ErrNotFound
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Book{}, err
	}
	defer tx.Rollback()

	var title string
	var authorID int64
	err = tx.QueryRowContext(ctx,
		`SELECT title, author_id FROM books WHERE id = $1`, uid.String()).
		Scan(&title, &authorID)
	if errors.Is(err, sql.ErrNoRows) {
		return Book{}, ErrNotFound
	}
	if err != nil {
		return Book{}, err
	}

	if in.Title != nil {
		title = *in.Title
	}
	if in.AuthorID != nil {
		authorID = *in.AuthorID
	}

	var msgs []string
	if in.Title != nil {
		msgs = validate.BookTitle(title)
		var taken bool
		err = tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM books WHERE title = $1 AND id <> $2)`,
			title, uid.String()).Scan(&taken)
		if err != nil {
			return Book{}, err
		}
		if taken {
			msgs = append(msgs, "Title has already been taken")
		}
	}
	if in.AuthorID != nil {
		var exists bool
		err = tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)`, authorID).Scan(&exists)
		if err != nil {
			return Book{}, err
		}
		if !exists {
			msgs = append(msgs, "Author must exist")
		}
	}
	if len(msgs) > 0 {
		return Book{}, &ValidationError{Messages: msgs}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE books SET title = $1, author_id = $2, updated_at = now() WHERE id = $3`,
		title, authorID, uid.String())
	if err != nil {
		if apperr.IsUniqueViolation(err, "books_title_key") {
			return Book{}, &ValidationError{Messages: []string{"Title has already been taken"}}
		}
		if apperr.IsForeignKeyViolation(err) {
			return Book{}, &ValidationError{Messages: []string{"Author must exist"}}
		}
		return Book{}, err
	}

	b, err := scanBook(tx.QueryRowContext(ctx, selectBook+` WHERE b.id = $1`, uid.String()))
	if err != nil {
		return Book{}, err
	}

	if err := tx.Commit(); err != nil {
		return Book{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return b, nil
}
