package handlers

import (
	"database/sql"
	"net/http"

	"github.com/nanafox/simple-books-api/internal/api/apperr"
	"github.com/nanafox/simple-books-api/internal/api/httpx"
	storebooks "github.com/nanafox/simple-books-api/internal/store/books"
)

// Status is the liveness probe.
func Status(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "API is running smoothly",
		"status":  http.StatusOK,
		"success": true,
	})
}

// Stats reports store-level counters.
func Stats(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := storebooks.Count(r.Context(), db)
		if err != nil {
			apperr.Internal(w, "failed to fetch stats")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "API Stats retrieved successfully",
			"status":  http.StatusOK,
			"success": true,
			"data": map[string]any{
				"books_count": count,
			},
		})
	}
}
