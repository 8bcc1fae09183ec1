package books

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/nanafox/simple-books-api/internal/api/apperr"
	"github.com/nanafox/simple-books-api/internal/api/httpx"
	"github.com/nanafox/simple-books-api/internal/representers"
	storebooks "github.com/nanafox/simple-books-api/internal/store/books"
	"github.com/nanafox/simple-books-api/internal/validate"
)

type createRequest struct {
	Book   *bookParams   `json:"book"`
	Author *authorParams `json:"author"`
}

// Create makes a new book. The owning author comes from the nested route, the
// book.author_id body field, or a full author object resolved with
// find-or-create, in that order of precedence.
func Create(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			apperr.BadRequest(w, "invalid JSON body")
			return
		}
		if req.Book == nil {
			apperr.BadRequest(w, missingBookParam)
			return
		}

		in := storebooks.CreateInput{}
		if req.Book.Title != nil {
			in.Title = *req.Book.Title
		}

		switch {
		case hasAuthorScope(r):
			id, _ := authorScope(r)
			in.AuthorID = &id
		case req.Book.AuthorID != nil:
			in.AuthorID = req.Book.AuthorID
		case req.Author == nil:
			apperr.BadRequest(w, missingAuthorParam)
			return
		default:
			if msgs := validate.Author(req.Author.FirstName, req.Author.LastName, req.Author.Age); len(msgs) > 0 {
				apperr.Unprocessable(w, msgs)
				return
			}
			in.Author = &storebooks.AuthorAttrs{
				FirstName: *req.Author.FirstName,
				LastName:  *req.Author.LastName,
				Age:       *req.Author.Age,
			}
		}

		b, err := storebooks.Create(r.Context(), db, in)
		if err != nil {
			var verr *storebooks.ValidationError
			switch {
			case errors.Is(err, storebooks.ErrAuthorNotFound):
				apperr.NotFound(w, fmt.Sprintf("Author with ID %d not found.", *in.AuthorID))
			case errors.Is(err, storebooks.ErrDuplicate):
				apperr.Conflict(w, "A book with this title and author already exists")
			case errors.As(err, &verr):
				apperr.Unprocessable(w, verr.Messages)
			default:
				apperr.Internal(w, "failed to create book")
			}
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, representers.Single(r.Method, b))
	}
}

func hasAuthorScope(r *http.Request) bool {
	_, ok := authorScope(r)
	return ok
}
