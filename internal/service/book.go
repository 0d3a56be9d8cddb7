package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/stpnv0/LibraryBooker/internal/service/ports"
)

type BookService struct {
	repo  ports.BookRepo
	cache ports.BookCache
}

func NewBookService(repo ports.BookRepo, cache ports.BookCache) *BookService {
	return &BookService{
		repo:  repo,
		cache: cache,
	}
}

func (s *BookService) Create(ctx context.Context, input domain.CreateBookInput) (*domain.Book, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Author) == "" {
		return nil, fmt.Errorf("%w: author is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.ISBN) == "" {
		return nil, fmt.Errorf("%w: isbn is required", domain.ErrValidation)
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	book := &domain.Book{
		ID:              uuid.New().String(),
		Title:           input.Title,
		Author:          input.Author,
		Category:        input.Category,
		PublicationYear: input.PublicationYear,
		ISBN:            input.ISBN,
		Price:           input.Price,
		Stock:           input.Stock,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return book, nil
}

func (s *BookService) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	if b, ok := s.cache.Get(ctx, id); ok {
		return b, nil
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, b)

	return b, nil
}

func (s *BookService) List(ctx context.Context) ([]*domain.Book, error) {
	return s.repo.List(ctx)
}

func (s *BookService) Update(ctx context.Context, id string, input domain.UpdateBookInput) (*domain.Book, error) {
	if input.Empty() {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrValidation)
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", domain.ErrValidation)
	}
	if input.Author != nil && strings.TrimSpace(*input.Author) == "" {
		return nil, fmt.Errorf("%w: author must not be empty", domain.ErrValidation)
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	b, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}
	s.cache.Invalidate(ctx, id)

	return b, nil
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	s.cache.Invalidate(ctx, id)
	return nil
}
