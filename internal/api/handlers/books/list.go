package books

import (
	"database/sql"
	"net/http"

	"github.com/nanafox/simple-books-api/internal/api/apperr"
	"github.com/nanafox/simple-books-api/internal/api/httpx"
	"github.com/nanafox/simple-books-api/internal/representers"
	storebooks "github.com/nanafox/simple-books-api/internal/store/books"
	"github.com/nanafox/simple-books-api/internal/validate"
)

// List serves both /books and /authors/{author_id}/books. The envelope's
// total_books is always the unfiltered store count; only data and
// current_number reflect paging and the author filter.
func List(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := storebooks.ListFilter{
			Limit:  validate.Limit(q.Get("limit")),
			Offset: validate.Offset(q.Get("offset")),
		}
		if id, ok := authorScope(r); ok {
			filter.AuthorID = &id
		} else if raw := q.Get("author_id"); raw != "" {
			id := int64(validate.IntParam(raw))
			filter.AuthorID = &id
		}

		list, err := storebooks.List(r.Context(), db, filter)
		if err != nil {
			apperr.Internal(w, "failed to list books")
			return
		}
		total, err := storebooks.Count(r.Context(), db)
		if err != nil {
			apperr.Internal(w, "failed to count books")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, representers.Collection(r.Method, total, list))
	}
}
