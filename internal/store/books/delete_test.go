package books_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	storebooks "github.com/nanafox/simple-books-api/internal/store/books"
)

func TestDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	id := "b3c1e0aa-42e0-4f55-9a9f-2c8f7d9a6b01"
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := storebooks.Delete(t.Context(), db, id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDelete_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	id := "b3c1e0aa-42e0-4f55-9a9f-2c8f7d9a6b01"
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = storebooks.Delete(t.Context(), db, id)
	if !errors.Is(err, storebooks.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteForAuthor_WrongAuthor(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	id := "b3c1e0aa-42e0-4f55-9a9f-2c8f7d9a6b01"
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE id = $1 AND author_id = $2`)).
		WithArgs(id, int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = storebooks.DeleteForAuthor(t.Context(), db, id, 8)
	if !errors.Is(err, storebooks.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDelete_NonUUIDSkipsQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	err = storebooks.Delete(t.Context(), db, "42")
	if !errors.Is(err, storebooks.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
