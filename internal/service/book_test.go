package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/LibraryBooker/internal/cache"
	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/stpnv0/LibraryBooker/internal/repository/memory"
	"github.com/stpnv0/LibraryBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookService_Create_Success(t *testing.T) {
	repo := mocks.NewMockBookRepo(t)
	cache := mocks.NewMockBookCache(t)
	svc := NewBookService(repo, cache)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	book, err := svc.Create(context.Background(), domain.CreateBookInput{
		Title:           "Dune",
		Author:          "Frank Herbert",
		Category:        "sci-fi",
		PublicationYear: 1965,
		ISBN:            "978-0441013593",
		Price:           9.99,
		Stock:           3,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, book.ID)
	assert.Equal(t, 3, book.Stock)
	assert.Equal(t, book.CreatedAt, book.UpdatedAt)
}

func TestBookService_Create_Validation(t *testing.T) {
	valid := domain.CreateBookInput{Title: "T", Author: "A", ISBN: "1", Stock: 1}

	tests := []struct {
		name   string
		mutate func(*domain.CreateBookInput)
	}{
		{"no title", func(in *domain.CreateBookInput) { in.Title = " " }},
		{"no author", func(in *domain.CreateBookInput) { in.Author = "" }},
		{"no isbn", func(in *domain.CreateBookInput) { in.ISBN = "" }},
		{"negative stock", func(in *domain.CreateBookInput) { in.Stock = -1 }},
		{"negative price", func(in *domain.CreateBookInput) { in.Price = -0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewBookService(nil, nil)
			in := valid
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookService_Create_DuplicateIsbn(t *testing.T) {
	repo := mocks.NewMockBookRepo(t)
	svc := NewBookService(repo, nil)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrIsbnTaken)

	_, err := svc.Create(context.Background(), domain.CreateBookInput{Title: "T", Author: "A", ISBN: "1"})

	assert.ErrorIs(t, err, domain.ErrIsbnTaken)
}

func TestBookService_GetByID_CacheHit(t *testing.T) {
	repo := mocks.NewMockBookRepo(t)
	cache := mocks.NewMockBookCache(t)
	svc := NewBookService(repo, cache)

	cached := &domain.Book{ID: "b1", Title: "Dune"}
	cache.EXPECT().Get(mock.Anything, "b1").Return(cached, true)

	book, err := svc.GetByID(context.Background(), "b1")

	require.NoError(t, err)
	assert.Same(t, cached, book)
}

func TestBookService_GetByID_CacheMissFillsCache(t *testing.T) {
	repo := mocks.NewMockBookRepo(t)
	cache := mocks.NewMockBookCache(t)
	svc := NewBookService(repo, cache)

	stored := &domain.Book{ID: "b1", Title: "Dune"}
	cache.EXPECT().Get(mock.Anything, "b1").Return(nil, false)
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(stored, nil)
	cache.EXPECT().Set(mock.Anything, stored).Return()

	book, err := svc.GetByID(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)
}

func TestBookService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockBookRepo(t)
	cache := mocks.NewMockBookCache(t)
	svc := NewBookService(repo, cache)

	cache.EXPECT().Get(mock.Anything, "missing").Return(nil, false)
	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookService_List(t *testing.T) {
	repo := mocks.NewMockBookRepo(t)
	svc := NewBookService(repo, nil)

	repo.EXPECT().List(mock.Anything).Return([]*domain.Book{{ID: "b1"}, {ID: "b2"}}, nil)

	books, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestBookService_Update_Restock(t *testing.T) {
	repo := mocks.NewMockBookRepo(t)
	cache := mocks.NewMockBookCache(t)
	svc := NewBookService(repo, cache)

	stock := 10
	in := domain.UpdateBookInput{Stock: &stock}
	repo.EXPECT().Update(mock.Anything, "b1", in).Return(&domain.Book{ID: "b1", Stock: 10}, nil)
	cache.EXPECT().Invalidate(mock.Anything, "b1").Return().Once()

	book, err := svc.Update(context.Background(), "b1", in)

	require.NoError(t, err)
	assert.Equal(t, 10, book.Stock)
}

func TestBookService_Update_Validation(t *testing.T) {
	negative := -1
	negativePrice := -2.5
	blank := "  "

	tests := []struct {
		name string
		in   domain.UpdateBookInput
	}{
		{"empty", domain.UpdateBookInput{}},
		{"negative stock", domain.UpdateBookInput{Stock: &negative}},
		{"negative price", domain.UpdateBookInput{Price: &negativePrice}},
		{"blank title", domain.UpdateBookInput{Title: &blank}},
		{"blank author", domain.UpdateBookInput{Author: &blank}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewBookService(nil, nil)

			_, err := svc.Update(context.Background(), "b1", tt.in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookService_Update_NotFoundKeepsCache(t *testing.T) {
	repo := mocks.NewMockBookRepo(t)
	cache := mocks.NewMockBookCache(t)
	svc := NewBookService(repo, cache)

	title := "Emma"
	repo.EXPECT().Update(mock.Anything, "missing", mock.Anything).Return(nil, domain.ErrBookNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateBookInput{Title: &title})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookService_Delete(t *testing.T) {
	repo := mocks.NewMockBookRepo(t)
	cache := mocks.NewMockBookCache(t)
	svc := NewBookService(repo, cache)

	repo.EXPECT().Delete(mock.Anything, "b1").Return(nil)
	cache.EXPECT().Invalidate(mock.Anything, "b1").Return().Once()
	repo.EXPECT().Delete(mock.Anything, "b2").Return(domain.ErrBookInUse)

	require.NoError(t, svc.Delete(context.Background(), "b1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "b2"), domain.ErrInvalidState)
}

func TestBookService_Update_KeepsReservedStock(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	require.NoError(t, store.Books().Create(ctx, &domain.Book{ID: bookID, Title: "Dune", ISBN: "1", Stock: 2}))
	require.NoError(t, store.Users().Create(ctx, &domain.User{ID: aliceID, Username: "alice", Email: "a@x.io"}))

	reservations := NewReservationService(store.Ledger(), cache.Noop{}, discardNotifier{}, newTestLogger(t))
	t.Cleanup(reservations.Wait)
	books := NewBookService(store.Books(), cache.Noop{})

	now := time.Now()
	_, err := reservations.Create(ctx, alice, domain.CreateReservationInput{
		BookID: bookID, StartDate: now, EndDate: now.Add(time.Hour),
	})
	require.NoError(t, err)

	title := "Dune (revised)"
	b, err := books.Update(ctx, bookID, domain.UpdateBookInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Dune (revised)", b.Title)
	assert.Equal(t, 1, b.Stock)
}
