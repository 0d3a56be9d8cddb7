package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/stpnv0/LibraryBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// LedgerRepository runs reservation units of work in Postgres transactions.
// Rows read for update are locked until commit.
type LedgerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLedgerRepo(db *dbpg.DB) *LedgerRepository {
	return &LedgerRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *LedgerRepository) InTx(ctx context.Context, fn func(ctx context.Context, tx ports.LedgerTx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(ctx, &ledgerTx{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// listReservationsQuery builds the joined listing for filter.
func listReservationsQuery(filter domain.ReservationFilter) (string, []any, error) {
	where := make([]goqu.Expression, 0, 3)
	if filter.UserID != "" {
		where = append(where, goqu.I("r.user_id").Eq(filter.UserID))
	}
	if filter.Status != "" {
		where = append(where, goqu.I("r.status").Eq(string(filter.Status)))
	}
	if !filter.EndBefore.IsZero() {
		where = append(where, goqu.I("r.end_date").Lt(filter.EndBefore))
	}

	ds := goqu.Dialect("postgres").
		From(goqu.T("reservations").As("r")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("r.book_id")))).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("r.user_id")))).
		Select(
			"r.id", "r.user_id", "r.book_id", "r.start_date", "r.end_date",
			"r.status", "r.created_at", "r.updated_at",
			"b.id", "b.title", "b.author", "b.category", "b.publication_year",
			"b.isbn", "b.price", "b.stock", "b.created_at", "b.updated_at",
			"u.id", "u.username", "u.email",
		).
		Order(goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc()).
		Prepared(true)

	if len(where) > 0 {
		ds = ds.Where(goqu.And(where...))
	}

	return ds.ToSQL()
}

func (r *LedgerRepository) ListReservations(
	ctx context.Context,
	filter domain.ReservationFilter,
) ([]domain.ReservationDetails, error) {
	query, args, err := listReservationsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	res := make([]domain.ReservationDetails, 0)
	for rows.Next() {
		var (
			d  domain.ReservationDetails
			rs = &d.Reservation
			b  = &d.Book
		)
		if err = rows.Scan(
			&rs.ID, &rs.UserID, &rs.BookID, &rs.StartDate, &rs.EndDate,
			&rs.Status, &rs.CreatedAt, &rs.UpdatedAt,
			&b.ID, &b.Title, &b.Author, &b.Category, &b.PublicationYear,
			&b.ISBN, &b.Price, &b.Stock, &b.CreatedAt, &b.UpdatedAt,
			&d.User.ID, &d.User.Username, &d.User.Email,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}

type ledgerTx struct {
	tx *sql.Tx
}

func (t *ledgerTx) BookForUpdate(ctx context.Context, id string) (domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1 FOR UPDATE`
	b, err := scanBook(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Book{}, domain.ErrBookNotFound
		}
		return domain.Book{}, fmt.Errorf("select book: %w", err)
	}
	return b, nil
}

func (t *ledgerTx) UpdateBookStock(ctx context.Context, id string, stock int) error {
	query := `UPDATE books SET stock = $2, updated_at = now() WHERE id = $1`
	res, err := t.tx.ExecContext(ctx, query, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return mustAffect(res, domain.ErrBookNotFound)
}

func (t *ledgerTx) User(ctx context.Context, id string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

const reservationColumns = `id, user_id, book_id, start_date, end_date, status, created_at, updated_at`

func (t *ledgerTx) ReservationForUpdate(ctx context.Context, id string) (domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`

	var r domain.Reservation
	err := t.tx.QueryRowContext(ctx, query, id).Scan(
		&r.ID, &r.UserID, &r.BookID, &r.StartDate, &r.EndDate,
		&r.Status, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reservation{}, domain.ErrReservationNotFound
		}
		return domain.Reservation{}, fmt.Errorf("select reservation: %w", err)
	}
	return r, nil
}

func (t *ledgerTx) InsertReservation(ctx context.Context, r domain.Reservation) error {
	query := `INSERT INTO reservations (` + reservationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := t.tx.ExecContext(
		ctx, query,
		r.ID, r.UserID, r.BookID, r.StartDate, r.EndDate,
		r.Status, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

func (t *ledgerTx) UpdateReservationStatus(
	ctx context.Context,
	id string,
	status domain.ReservationStatus,
	at time.Time,
) error {
	query := `UPDATE reservations SET status = $2, updated_at = $3 WHERE id = $1`
	res, err := t.tx.ExecContext(ctx, query, id, status, at)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	return mustAffect(res, domain.ErrReservationNotFound)
}

func mustAffect(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
