package representers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nanafox/simple-books-api/internal/representers"
	storebooks "github.com/nanafox/simple-books-api/internal/store/books"
)

func sampleBook() storebooks.Book {
	created := time.Date(2024, 9, 6, 16, 22, 22, 123_000_000, time.UTC)
	return storebooks.Book{
		ID:              "0f7f3a0e-9c05-4d9e-8f63-1c2b5f1a9d10",
		Title:           "The Mom Test",
		AuthorID:        7,
		AuthorFirstName: "Rob",
		AuthorLastName:  "Fitzpatrick",
		AuthorAge:       45,
		CreatedAt:       created,
		UpdatedAt:       created.Add(time.Hour),
	}
}

func TestSingle_BookView(t *testing.T) {
	env := representers.Single(http.MethodGet, sampleBook())

	assert.Equal(t, "Book retrieved successfully", env.Message)
	assert.True(t, env.Success)
	assert.Equal(t, "The Mom Test", env.Data.Title)
	assert.Equal(t, int64(7), env.Data.AuthorID)
	assert.Equal(t, "Rob Fitzpatrick", env.Data.AuthorName)
	assert.Equal(t, 45, env.Data.AuthorAge)
	assert.Equal(t, "2024-09-06T16:22:22.123Z", env.Data.CreatedAt)
	assert.Equal(t, "2024-09-06T17:22:22.123Z", env.Data.UpdatedAt)
}

func TestActionMessages(t *testing.T) {
	tests := []struct {
		method     string
		collection bool
		want       string
	}{
		{http.MethodGet, true, "Books retrieved successfully"},
		{http.MethodGet, false, "Book retrieved successfully"},
		{http.MethodPost, false, "Book created successfully"},
		{http.MethodPut, false, "Book updated successfully"},
		{http.MethodPatch, false, "Book updated successfully"},
		{http.MethodHead, false, "Success"},
	}
	for _, tt := range tests {
		var got string
		if tt.collection {
			got = representers.Collection(tt.method, 0, nil).Message
		} else {
			got = representers.Single(tt.method, sampleBook()).Message
		}
		assert.Equal(t, tt.want, got, "%s collection=%v", tt.method, tt.collection)
	}
}

func TestCollection_CountsAndCompaction(t *testing.T) {
	list := []storebooks.Book{sampleBook(), {}, sampleBook()}

	env := representers.Collection(http.MethodGet, 42, list)

	assert.Equal(t, "Books retrieved successfully", env.Message)
	assert.True(t, env.Success)
	// total_books reports the whole store, not this page
	assert.Equal(t, 42, env.TotalBooks)
	// the zero entry is dropped before rendering
	assert.Equal(t, 2, env.CurrentNumber)
	assert.Len(t, env.Data, 2)
}

func TestCollection_EmptyPage(t *testing.T) {
	env := representers.Collection(http.MethodGet, 9, nil)

	assert.Equal(t, 9, env.TotalBooks)
	assert.Equal(t, 0, env.CurrentNumber)
	assert.NotNil(t, env.Data)
	assert.Empty(t, env.Data)
}
