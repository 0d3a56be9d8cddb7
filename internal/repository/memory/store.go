// Package memory keeps books, users and reservations in process memory.
// It backs the "memory" storage driver and the service tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/stpnv0/LibraryBooker/internal/service/ports"
)

type Store struct {
	mu           sync.Mutex
	books        map[string]domain.Book
	users        map[string]domain.User
	reservations map[string]domain.Reservation
}

func New() *Store {
	return &Store{
		books:        make(map[string]domain.Book),
		users:        make(map[string]domain.User),
		reservations: make(map[string]domain.Reservation),
	}
}

func (s *Store) Books() *BookRepository { return &BookRepository{s: s} }

func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

func (s *Store) Ledger() *LedgerRepository { return &LedgerRepository{s: s} }

type BookRepository struct {
	s *Store
}

func (r *BookRepository) Create(_ context.Context, b *domain.Book) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.books {
		if existing.ISBN == b.ISBN {
			return domain.ErrIsbnTaken
		}
	}
	r.s.books[b.ID] = *b
	return nil
}

func (r *BookRepository) GetByID(_ context.Context, id string) (*domain.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	return &b, nil
}

func (r *BookRepository) List(_ context.Context) ([]*domain.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := make([]*domain.Book, 0, len(r.s.books))
	for _, b := range r.s.books {
		b := b
		res = append(res, &b)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].ID > res[j].ID
		}
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (r *BookRepository) Update(_ context.Context, id string, in domain.UpdateBookInput) (*domain.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	in.Apply(&b)
	b.UpdatedAt = time.Now().UTC()
	r.s.books[id] = b
	return &b, nil
}

// Delete refuses books that any reservation still references.
func (r *BookRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.books[id]; !ok {
		return domain.ErrBookNotFound
	}
	for _, rsv := range r.s.reservations {
		if rsv.BookID == id {
			return domain.ErrBookInUse
		}
	}
	delete(r.s.books, id)
	return nil
}

type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Username == u.Username || strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrUsernameTaken
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		u := u
		res = append(res, &u)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Username < res[j].Username })
	return res, nil
}

// LedgerRepository serialises units of work on the store mutex.
type LedgerRepository struct {
	s *Store
}

func (r *LedgerRepository) InTx(ctx context.Context, fn func(ctx context.Context, tx ports.LedgerTx) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t := &ledgerTx{
		s:            r.s,
		books:        make(map[string]domain.Book),
		reservations: make(map[string]domain.Reservation),
	}
	if err := fn(ctx, t); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for id, b := range t.books {
		r.s.books[id] = b
	}
	for id, res := range t.reservations {
		r.s.reservations[id] = res
	}
	return nil
}

func (r *LedgerRepository) ListReservations(
	_ context.Context,
	filter domain.ReservationFilter,
) ([]domain.ReservationDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := make([]domain.ReservationDetails, 0)
	for _, rsv := range r.s.reservations {
		if !filter.Match(rsv) {
			continue
		}

		book, ok := r.s.books[rsv.BookID]
		if !ok {
			book = domain.Book{ID: rsv.BookID}
		}
		user := domain.UserSummary{ID: rsv.UserID}
		if u, ok := r.s.users[rsv.UserID]; ok {
			user.Username = u.Username
			user.Email = u.Email
		}

		res = append(res, domain.ReservationDetails{
			Reservation: rsv,
			Book:        book,
			User:        user,
		})
	}

	sort.Slice(res, func(i, j int) bool {
		a, b := res[i].Reservation, res[j].Reservation
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID > b.ID
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return res, nil
}

// ledgerTx reads through staged writes to the committed maps.
type ledgerTx struct {
	s            *Store
	books        map[string]domain.Book
	reservations map[string]domain.Reservation
}

func (t *ledgerTx) book(id string) (domain.Book, bool) {
	if b, ok := t.books[id]; ok {
		return b, true
	}
	b, ok := t.s.books[id]
	return b, ok
}

func (t *ledgerTx) reservation(id string) (domain.Reservation, bool) {
	if r, ok := t.reservations[id]; ok {
		return r, true
	}
	r, ok := t.s.reservations[id]
	return r, ok
}

func (t *ledgerTx) BookForUpdate(_ context.Context, id string) (domain.Book, error) {
	b, ok := t.book(id)
	if !ok {
		return domain.Book{}, domain.ErrBookNotFound
	}
	return b, nil
}

func (t *ledgerTx) UpdateBookStock(_ context.Context, id string, stock int) error {
	b, ok := t.book(id)
	if !ok {
		return domain.ErrBookNotFound
	}
	b.Stock = stock
	b.UpdatedAt = time.Now().UTC()
	t.books[id] = b
	return nil
}

func (t *ledgerTx) User(_ context.Context, id string) (domain.User, error) {
	u, ok := t.s.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (t *ledgerTx) ReservationForUpdate(_ context.Context, id string) (domain.Reservation, error) {
	r, ok := t.reservation(id)
	if !ok {
		return domain.Reservation{}, domain.ErrReservationNotFound
	}
	return r, nil
}

func (t *ledgerTx) InsertReservation(_ context.Context, r domain.Reservation) error {
	if _, exists := t.reservation(r.ID); exists {
		return fmt.Errorf("reservation %s already exists", r.ID)
	}
	t.reservations[r.ID] = r
	return nil
}

func (t *ledgerTx) UpdateReservationStatus(
	_ context.Context,
	id string,
	status domain.ReservationStatus,
	at time.Time,
) error {
	r, ok := t.reservation(id)
	if !ok {
		return domain.ErrReservationNotFound
	}
	r.Status = status
	r.UpdatedAt = at
	t.reservations[id] = r
	return nil
}
