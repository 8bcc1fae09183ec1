package books

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/nanafox/simple-books-api/internal/api/apperr"
	"github.com/nanafox/simple-books-api/internal/api/httpx"
	"github.com/nanafox/simple-books-api/internal/representers"
	storebooks "github.com/nanafox/simple-books-api/internal/store/books"
)

// notFoundMessage echoes the identifier exactly as the client sent it,
// numeric or not.
func notFoundMessage(id string) string {
	return fmt.Sprintf("Couldn't find Book with 'id'=%s", id)
}

func Get(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var b storebooks.Book
		var err error
		if authorID, ok := authorScope(r); ok {
			b, err = storebooks.GetForAuthor(r.Context(), db, id, authorID)
			if errors.Is(err, storebooks.ErrNotFound) {
				apperr.NotFound(w, "Book not found for the given author")
				return
			}
		} else {
			b, err = storebooks.GetByID(r.Context(), db, id)
			if errors.Is(err, storebooks.ErrNotFound) {
				apperr.NotFound(w, notFoundMessage(id))
				return
			}
		}
		if err != nil {
			apperr.Internal(w, "failed to fetch book")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, representers.Single(r.Method, b))
	}
}
