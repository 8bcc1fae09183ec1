package apperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes we care about at write time.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation, optionally restricted to a named constraint. The unique index on
// books.title backs the application-level duplicate pre-check; concurrent
// creates that slip past the pre-check land here.
func IsUniqueViolation(err error, constraint string) bool {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) || pg.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pg.ConstraintName == constraint
}

// IsForeignKeyViolation reports whether err is a referential-integrity
// failure, e.g. a book pointing at an author that no longer exists.
func IsForeignKeyViolation(err error) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == foreignKeyViolation
}
