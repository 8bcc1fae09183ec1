package models

import "time"

type Author struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName is how an author appears in book views.
func (a Author) FullName() string {
	return a.FirstName + " " + a.LastName
}
