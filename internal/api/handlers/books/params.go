package books

import (
	"net/http"

	"github.com/nanafox/simple-books-api/internal/validate"
)

// bookParams is the permitted subset of the "book" body key. Unknown keys in
// the request body are ignored, not errors.
type bookParams struct {
	Title    *string `json:"title"`
	AuthorID *int64  `json:"author_id"`
}

// authorParams is the full author object accepted on create when no author id
// is given.
type authorParams struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Age       *int    `json:"age"`
}

const (
	missingBookParam   = "param is missing or the value is empty: book"
	missingAuthorParam = "param is missing or the value is empty: author"
)

// authorScope reads the author id from the nested route, if this request came
// in through one.
func authorScope(r *http.Request) (int64, bool) {
	raw := r.PathValue("author_id")
	if raw == "" {
		return 0, false
	}
	return int64(validate.IntParam(raw)), true
}
