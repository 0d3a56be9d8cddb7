package ports

import (
	"context"

	"github.com/stpnv0/LibraryBooker/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, user *domain.User, book *domain.Book, r *domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, user *domain.User, book *domain.Book, r *domain.Reservation)
	NotifyReservationCompleted(ctx context.Context, user *domain.User, book *domain.Book, r *domain.Reservation)
}
