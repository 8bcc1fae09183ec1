package books

import "time"

// Book is the store's read shape: a book row joined with its author, which is
// everything the representer needs for a book view.
type Book struct {
	ID              string
	Title           string
	AuthorID        int64
	AuthorFirstName string
	AuthorLastName  string
	AuthorAge       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AuthorName renders the author the way book views expect it.
func (b Book) AuthorName() string {
	return b.AuthorFirstName + " " + b.AuthorLastName
}

// ListFilter narrows and pages the book listing. Limit and Offset are passed
// to the store as given; clamping is the caller's concern.
type ListFilter struct {
	Limit    int
	Offset   int
	AuthorID *int64
}

// AuthorAttrs are the attributes used for find-or-create: an author matches
// only when all three are identical.
type AuthorAttrs struct {
	FirstName string
	LastName  string
	Age       int
}

// CreateInput resolves the owning author either by id or by attributes;
// exactly one of AuthorID and Author must be set.
type CreateInput struct {
	Title    string
	AuthorID *int64
	Author   *AuthorAttrs
}

// UpdateInput applies partial or full attribute replacement. Nil fields are
// left untouched.
type UpdateInput struct {
	Title    *string
	AuthorID *int64
}
