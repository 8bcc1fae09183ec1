package books

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/nanafox/simple-books-api/internal/api/apperr"
	"github.com/nanafox/simple-books-api/internal/api/httpx"
	"github.com/nanafox/simple-books-api/internal/representers"
	storebooks "github.com/nanafox/simple-books-api/internal/store/books"
)

type updateRequest struct {
	Book *bookParams `json:"book"`
}

// Update handles both PUT and PATCH: provided attributes are applied, absent
// ones are kept. A validation failure leaves the stored record unchanged.
func Update(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		id := r.PathValue("id")

		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			apperr.BadRequest(w, "invalid JSON body")
			return
		}
		if req.Book == nil {
			// Locating the record comes first: a miss is a 404 even when the
			// body is also missing its book key.
			if _, err := storebooks.GetByID(r.Context(), db, id); errors.Is(err, storebooks.ErrNotFound) {
				apperr.NotFound(w, notFoundMessage(id))
				return
			}
			apperr.BadRequest(w, missingBookParam)
			return
		}

		b, err := storebooks.Update(r.Context(), db, id, storebooks.UpdateInput{
			Title:    req.Book.Title,
			AuthorID: req.Book.AuthorID,
		})
		if err != nil {
			var verr *storebooks.ValidationError
			switch {
			case errors.Is(err, storebooks.ErrNotFound):
				apperr.NotFound(w, notFoundMessage(id))
			case errors.As(err, &verr):
				apperr.Unprocessable(w, verr.Messages)
			default:
				apperr.Internal(w, "failed to update book")
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, representers.Single(r.Method, b))
	}
}
