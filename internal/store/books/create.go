package books

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nanafox/simple-books-api/internal/api/apperr"
	"github.com/nanafox/simple-books-api/internal/validate"
)

// Create resolves the owning author, rejects duplicates, validates and
// inserts, all in one transaction. A failure at any step leaves nothing
// behind, including an author that find-or-create would have inserted.
func Create(ctx context.Context, db *sql.DB, in CreateInput) (Book, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Book{}, err
	}
	defer tx.Rollback()

	var author AuthorAttrs
	var authorID int64
	if in.AuthorID != nil {
		authorID = *in.AuthorID
		author, err = authorByID(ctx, tx, authorID)
		if err != nil {
			return Book{}, err
		}
	} else {
		authorID, err = findOrCreateAuthor(ctx, tx, *in.Author)
		if err != nil {
			return Book{}, err
		}
		author = *in.Author
	}

	var owned bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM books WHERE author_id = $1 AND title = $2)`,
		authorID, in.Title).Scan(&owned)
	if err != nil {
		return Book{}, err
	}
	if owned {
		return Book{}, ErrDuplicate
	}

	msgs := validate.BookTitle(in.Title)
	var taken bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM books WHERE title = $1)`, in.Title).Scan(&taken)
	if err != nil {
		return Book{}, err
	}
	if taken {
		msgs = append(msgs, "Title has already been taken")
	}
	if len(msgs) > 0 {
		return Book{}, &ValidationError{Messages: msgs}
	}

	b := Book{
		Title:           in.Title,
		AuthorID:        authorID,
		AuthorFirstName: author.FirstName,
		AuthorLastName:  author.LastName,
		AuthorAge:       author.Age,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO books (title, author_id)
		VALUES ($1, $2)
		RETURNING id::text, created_at, updated_at`,
		in.Title, authorID).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		// A concurrent create can still slip past the pre-check; the unique
		// index turns that race into the same validation failure.
		if apperr.IsUniqueViolation(err, "books_title_key") {
			return Book{}, &ValidationError{Messages: []string{"Title has already been taken"}}
		}
		return Book{}, err
	}

	if err := tx.Commit(); err != nil {
		return Book{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return b, nil
}

func authorByID(ctx context.Context, tx *sql.Tx, id int64) (AuthorAttrs, error) {
	var a AuthorAttrs
	err := tx.QueryRowContext(ctx,
		`SELECT first_name, last_name, age FROM authors WHERE id = $1`, id).
		Scan(&a.FirstName, &a.LastName, &a.Age)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthorAttrs{}, ErrAuthorNotFound
	}
	return a, err
}

// findOrCreateAuthor reuses an author whose attributes match exactly, and
// inserts one otherwise. Runs inside the book-create transaction so a later
// failure rolls the author back too.
func findOrCreateAuthor(ctx context.Context, tx *sql.Tx, attrs AuthorAttrs) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `
		SELECT id FROM authors
		WHERE first_name = $1 AND last_name = $2 AND age = $3
		ORDER BY id LIMIT 1`,
		attrs.FirstName, attrs.LastName, attrs.Age).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO authors (first_name, last_name, age)
		VALUES ($1, $2, $3)
		RETURNING id`,
		attrs.FirstName, attrs.LastName, attrs.Age).Scan(&id)
	return id, err
}
