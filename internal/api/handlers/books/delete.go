package books

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/nanafox/simple-books-api/internal/api/apperr"
	storebooks "github.com/nanafox/simple-books-api/internal/store/books"
)

func Delete(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var err error
		if authorID, ok := authorScope(r); ok {
			err = storebooks.DeleteForAuthor(r.Context(), db, id, authorID)
			if errors.Is(err, storebooks.ErrNotFound) {
				apperr.NotFound(w, "Book not found for the given author")
				return
			}
		} else {
			err = storebooks.Delete(r.Context(), db, id)
			if errors.Is(err, storebooks.ErrNotFound) {
				apperr.NotFound(w, notFoundMessage(id))
				return
			}
		}
		if err != nil {
			apperr.Internal(w, "failed to delete book")
			return
		}

		// No response body on successful delete.
		w.WriteHeader(http.StatusNoContent)
	}
}
