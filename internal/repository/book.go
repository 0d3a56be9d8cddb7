package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

func isUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return hasCode(err, foreignKeyViolation)
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == code
}

type BookRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookRepo(db *dbpg.DB) *BookRepository {
	return &BookRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const bookColumns = `id, title, author, category, publication_year, isbn, price, stock, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (domain.Book, error) {
	var b domain.Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Category, &b.PublicationYear,
		&b.ISBN, &b.Price, &b.Stock, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *BookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (` + bookColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.Title, b.Author, b.Category, b.PublicationYear,
		b.ISBN, b.Price, b.Stock, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrIsbnTaken
		}
		return fmt.Errorf("insert book: %w", err)
	}

	return nil
}

func (r *BookRepository) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}

	b, err := scanBook(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("scan book: %w", err)
	}

	return &b, nil
}

func (r *BookRepository) List(ctx context.Context) ([]*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

// updateBookQuery sets only the fields present in in.
func updateBookQuery(id string, in domain.UpdateBookInput) (string, []any, error) {
	rec := goqu.Record{"updated_at": goqu.L("now()")}
	if in.Title != nil {
		rec["title"] = *in.Title
	}
	if in.Author != nil {
		rec["author"] = *in.Author
	}
	if in.Category != nil {
		rec["category"] = *in.Category
	}
	if in.PublicationYear != nil {
		rec["publication_year"] = *in.PublicationYear
	}
	if in.Price != nil {
		rec["price"] = *in.Price
	}
	if in.Stock != nil {
		rec["stock"] = *in.Stock
	}

	returning := make([]any, 0, 10)
	for _, col := range strings.Split(bookColumns, ", ") {
		returning = append(returning, goqu.C(col))
	}

	return goqu.Dialect("postgres").
		Update("books").
		Set(rec).
		Where(goqu.C("id").Eq(id)).
		Returning(returning...).
		Prepared(true).
		ToSQL()
}

func (r *BookRepository) Update(ctx context.Context, id string, in domain.UpdateBookInput) (*domain.Book, error) {
	query, args, err := updateBookQuery(id, in)
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}

	b, err := scanBook(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("scan book: %w", err)
	}

	return &b, nil
}

func (r *BookRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrBookInUse
		}
		return fmt.Errorf("delete book: %w", err)
	}
	return mustAffect(res, domain.ErrBookNotFound)
}
