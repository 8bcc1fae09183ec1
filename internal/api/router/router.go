package router

import (
	"database/sql"
	"net/http"

	"github.com/nanafox/simple-books-api/internal/api/apperr"
	"github.com/nanafox/simple-books-api/internal/api/handlers"
	"github.com/nanafox/simple-books-api/internal/api/handlers/books"
)

func Router(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	// Books (method-specific 1.22 patterns)
	mux.Handle("GET /api/v1/books", books.List(db))
	mux.Handle("POST /api/v1/books", books.Create(db))
	mux.Handle("GET /api/v1/books/{id}", books.Get(db))
	mux.Handle("PUT /api/v1/books/{id}", books.Update(db))
	mux.Handle("PATCH /api/v1/books/{id}", books.Update(db))
	mux.Handle("DELETE /api/v1/books/{id}", books.Delete(db))

	// Authors, plus the author-scoped book routes
	mux.Handle("GET /api/v1/authors", handlers.Authors(db))
	mux.Handle("GET /api/v1/authors/{author_id}/books", books.List(db))
	mux.Handle("POST /api/v1/authors/{author_id}/books", books.Create(db))
	mux.Handle("GET /api/v1/authors/{author_id}/books/{id}", books.Get(db))
	mux.Handle("DELETE /api/v1/authors/{author_id}/books/{id}", books.Delete(db))

	// Health and stats
	mux.HandleFunc("GET /api/status", handlers.Status)
	mux.Handle("GET /api/stats", handlers.Stats(db))

	// Everything else is an invalid route.
	mux.HandleFunc("/", apperr.RouteNotFound)

	return mux
}
