package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookRowColumns = []string{
	"id", "title", "author", "category", "publication_year",
	"isbn", "price", "stock", "created_at", "updated_at",
}

var reservationRowColumns = []string{
	"id", "user_id", "book_id", "start_date", "end_date", "status", "created_at", "updated_at",
}

func newMockTx(t *testing.T) (*ledgerTx, sqlmock.Sqlmock) {
	t.Helper()
	db, m, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)

	return &ledgerTx{tx: tx}, m
}

func TestLedgerTx_BookForUpdate(t *testing.T) {
	tx, m := newMockTx(t)
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	m.ExpectQuery(regexp.QuoteMeta(`FROM books WHERE id = $1 FOR UPDATE`)).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows(bookRowColumns).
			AddRow("b1", "Dune", "Frank Herbert", "sci-fi", 1965, "1", 9.5, 2, now, now))

	b, err := tx.BookForUpdate(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, 2, b.Stock)
	assert.Equal(t, now, b.CreatedAt)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestLedgerTx_BookForUpdate_NotFound(t *testing.T) {
	tx, m := newMockTx(t)

	m.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(bookRowColumns))

	_, err := tx.BookForUpdate(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBookNotFound)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestLedgerTx_ReservationForUpdate(t *testing.T) {
	tx, m := newMockTx(t)
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	m.ExpectQuery(regexp.QuoteMeta(`FROM reservations WHERE id = $1 FOR UPDATE`)).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows(reservationRowColumns).
			AddRow("r1", "u1", "b1", start, start.AddDate(0, 0, 7), "active", start, start))

	r, err := tx.ReservationForUpdate(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusActive, r.Status)
	assert.Equal(t, "b1", r.BookID)

	m.ExpectQuery(regexp.QuoteMeta(`FROM reservations WHERE id = $1 FOR UPDATE`)).
		WithArgs("gone").
		WillReturnRows(sqlmock.NewRows(reservationRowColumns))

	_, err = tx.ReservationForUpdate(context.Background(), "gone")
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestLedgerTx_UpdateReservationStatus_NoRows(t *testing.T) {
	tx, m := newMockTx(t)
	at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	m.ExpectExec(regexp.QuoteMeta(`UPDATE reservations SET status = $2, updated_at = $3 WHERE id = $1`)).
		WithArgs("r1", domain.ReservationStatusCancelled, at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	m.ExpectExec(regexp.QuoteMeta(`UPDATE reservations`)).
		WithArgs("gone", domain.ReservationStatusCancelled, at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, tx.UpdateReservationStatus(context.Background(), "r1", domain.ReservationStatusCancelled, at))
	err := tx.UpdateReservationStatus(context.Background(), "gone", domain.ReservationStatusCancelled, at)

	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestLedgerTx_UpdateBookStock(t *testing.T) {
	tx, m := newMockTx(t)
	dbErr := errors.New("connection reset")

	m.ExpectExec(regexp.QuoteMeta(`UPDATE books SET stock = $2`)).
		WithArgs("b1", 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	m.ExpectExec(regexp.QuoteMeta(`UPDATE books SET stock = $2`)).
		WithArgs("b1", 0).
		WillReturnError(dbErr)

	assert.ErrorIs(t, tx.UpdateBookStock(context.Background(), "b1", 1), domain.ErrBookNotFound)
	assert.ErrorIs(t, tx.UpdateBookStock(context.Background(), "b1", 0), dbErr)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestMustAffect_RowsAffectedError(t *testing.T) {
	boom := errors.New("driver cannot count")

	err := mustAffect(sqlmock.NewErrorResult(boom), domain.ErrBookNotFound)

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrBookNotFound)
}

func TestPgErrorCodes(t *testing.T) {
	fk := fmt.Errorf("exec: %w", &pq.Error{Code: foreignKeyViolation})
	unique := &pq.Error{Code: uniqueViolation}

	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(fk))
	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isForeignKeyViolation(errors.New("plain")))
}

func TestUpdateBookQuery(t *testing.T) {
	stock := 4
	title := "Dune"

	query, args, err := updateBookQuery("b1", domain.UpdateBookInput{Stock: &stock, Title: &title})
	require.NoError(t, err)

	assert.Contains(t, query, `UPDATE "books" SET`)
	assert.Contains(t, query, `"stock"=$1`)
	assert.Contains(t, query, `"title"=$2`)
	assert.Contains(t, query, `"updated_at"=now()`)
	assert.Contains(t, query, `"id" = $3`)
	assert.Contains(t, query, `RETURNING "id"`)
	assert.NotContains(t, query, `"price"=`)
	assert.Equal(t, []any{4, "Dune", "b1"}, args)
}
