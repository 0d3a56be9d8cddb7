package ports

import (
	"context"

	"github.com/stpnv0/LibraryBooker/internal/domain"
)

type BookRepo interface {
	Create(ctx context.Context, b *domain.Book) error
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
	// Update applies only the set fields of in, so concurrent stock moves are kept.
	Update(ctx context.Context, id string, in domain.UpdateBookInput) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
}

type BookCache interface {
	Get(ctx context.Context, id string) (*domain.Book, bool)
	Set(ctx context.Context, b *domain.Book)
	Invalidate(ctx context.Context, id string)
}
