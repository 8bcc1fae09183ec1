package authors

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nanafox/simple-books-api/internal/models"
)

// ErrNotFound: no author with the given id.
var ErrNotFound = errors.New("author not found")

// GetByID fetches one author.
func GetByID(ctx context.Context, db *sql.DB, id int64) (models.Author, error) {
	var a models.Author
	err := db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, age, created_at, updated_at
		FROM authors WHERE id = $1`, id).
		Scan(&a.ID, &a.FirstName, &a.LastName, &a.Age, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Author{}, ErrNotFound
	}
	if err != nil {
		return models.Author{}, err
	}
	return a, nil
}

// List returns every author, unpaginated.
func List(ctx context.Context, db *sql.DB) ([]models.Author, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, first_name, last_name, age, created_at, updated_at
		FROM authors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Author{}
	for rows.Next() {
		var a models.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Age,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
