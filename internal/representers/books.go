// Package representers shapes entities into the wire-format views the API
// returns. Every successful book response goes through here.
package representers

import (
	"net/http"

	storebooks "github.com/nanafox/simple-books-api/internal/store/books"
)

// iso8601Millis matches the timestamp style of the API's book views:
// ISO-8601 in UTC with millisecond precision.
const iso8601Millis = "2006-01-02T15:04:05.000Z07:00"

type BookView struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	AuthorID   int64  `json:"author_id"`
	AuthorName string `json:"author_name"`
	AuthorAge  int    `json:"author_age"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// CollectionEnvelope is the list response. TotalBooks is the unfiltered store
// count; CurrentNumber is how many views this response carries.
type CollectionEnvelope struct {
	Message       string     `json:"message"`
	Success       bool       `json:"success"`
	TotalBooks    int        `json:"total_books"`
	CurrentNumber int        `json:"current_number"`
	Data          []BookView `json:"data"`
}

type SingleEnvelope struct {
	Message string   `json:"message"`
	Success bool     `json:"success"`
	Data    BookView `json:"data"`
}

// Collection renders a page of books. Zero-value entries are dropped before
// mapping, so a sparse page never renders empty views.
func Collection(method string, total int, list []storebooks.Book) CollectionEnvelope {
	views := make([]BookView, 0, len(list))
	for _, b := range compact(list) {
		views = append(views, toView(b))
	}
	return CollectionEnvelope{
		Message:       actionMessage(method, true),
		Success:       true,
		TotalBooks:    total,
		CurrentNumber: len(views),
		Data:          views,
	}
}

// Single renders one book.
func Single(method string, b storebooks.Book) SingleEnvelope {
	return SingleEnvelope{
		Message: actionMessage(method, false),
		Success: true,
		Data:    toView(b),
	}
}

func toView(b storebooks.Book) BookView {
	return BookView{
		ID:         b.ID,
		Title:      b.Title,
		AuthorID:   b.AuthorID,
		AuthorName: b.AuthorName(),
		AuthorAge:  b.AuthorAge,
		CreatedAt:  b.CreatedAt.UTC().Format(iso8601Millis),
		UpdatedAt:  b.UpdatedAt.UTC().Format(iso8601Millis),
	}
}

func compact(list []storebooks.Book) []storebooks.Book {
	out := list[:0:len(list)]
	for _, b := range list {
		if b.ID == "" {
			continue
		}
		out = append(out, b)
	}
	return out
}

// actionMessage picks the envelope message from the originating verb.
func actionMessage(method string, collection bool) string {
	switch method {
	case http.MethodGet:
		if collection {
			return "Books retrieved successfully"
		}
		return "Book retrieved successfully"
	case http.MethodPost:
		return "Book created successfully"
	case http.MethodPut, http.MethodPatch:
		return "Book updated successfully"
	default:
		return "Success"
	}
}
