package books

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound: no book matched the lookup (by id, or by id within an
	// author's collection).
	ErrNotFound = errors.New("book not found")

	// ErrAuthorNotFound: the author id given for a create did not resolve.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrDuplicate: the resolved author already owns a book with this title.
	ErrDuplicate = errors.New("duplicate book for author")
)

// ValidationError aggregates every rule the write violated, in the order the
// rules run. Handlers render the messages verbatim in a 422 envelope.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, ", ")
}
