package handlers

import (
	"database/sql"
	"net/http"

	"github.com/nanafox/simple-books-api/internal/api/apperr"
	"github.com/nanafox/simple-books-api/internal/api/httpx"
	storeauthors "github.com/nanafox/simple-books-api/internal/store/authors"
)

// Authors lists every author as a raw entity array. Unlike books there is no
// envelope and no pagination here; the shape is kept as-is for compatibility.
func Authors(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := storeauthors.List(r.Context(), db)
		if err != nil {
			apperr.Internal(w, "failed to list authors")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, list)
	}
}
