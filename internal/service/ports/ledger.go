package ports

import (
	"context"
	"time"

	"github.com/stpnv0/LibraryBooker/internal/domain"
)

// LedgerStore persists reservations together with the stock of the books they hold.
type LedgerStore interface {
	// InTx runs fn as one unit of work. Nothing fn wrote is kept when it returns an error.
	InTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
	ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.ReservationDetails, error)
}

// LedgerTx is the view of the store inside a unit of work.
type LedgerTx interface {
	BookForUpdate(ctx context.Context, id string) (domain.Book, error)
	UpdateBookStock(ctx context.Context, id string, stock int) error
	User(ctx context.Context, id string) (domain.User, error)
	ReservationForUpdate(ctx context.Context, id string) (domain.Reservation, error)
	InsertReservation(ctx context.Context, r domain.Reservation) error
	UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus, at time.Time) error
}
