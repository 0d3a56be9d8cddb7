package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/stpnv0/LibraryBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// systemActor performs housekeeping transitions such as the expiry sweep.
var systemActor = domain.Actor{UserID: "system", Role: domain.RoleAdmin}

type ReservationService struct {
	store    ports.LedgerStore
	cache    ports.BookCache
	notifier ports.ReservationNotifier
	logger   logger.Logger

	legacyAdminOverwrite bool
	now                  func() time.Time

	pending sync.WaitGroup
}

type ReservationOption func(*ReservationService)

// WithLegacyAdminOverwrite makes UpdateStatus overwrite the status from any
// state instead of consulting the transition table.
func WithLegacyAdminOverwrite(enabled bool) ReservationOption {
	return func(s *ReservationService) {
		s.legacyAdminOverwrite = enabled
	}
}

func WithClock(now func() time.Time) ReservationOption {
	return func(s *ReservationService) {
		s.now = now
	}
}

func NewReservationService(
	store ports.LedgerStore,
	cache ports.BookCache,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
	opts ...ReservationOption,
) *ReservationService {
	s := &ReservationService{
		store:    store,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ReservationService) Create(
	ctx context.Context,
	actor domain.Actor,
	input domain.CreateReservationInput,
) (*domain.Reservation, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}

	now := s.now().UTC()
	if input.EndDate.Before(domain.ExpiryCutoff(now)) {
		return nil, fmt.Errorf("%w: end_date must not be in the past", domain.ErrValidation)
	}
	r := domain.Reservation{
		ID:        uuid.New().String(),
		UserID:    actor.UserID,
		BookID:    input.BookID,
		StartDate: input.StartDate.UTC(),
		EndDate:   input.EndDate.UTC(),
		Status:    domain.InitialReservationStatus,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var (
		book domain.Book
		user domain.User
	)
	err := s.store.InTx(ctx, func(ctx context.Context, tx ports.LedgerTx) error {
		var err error
		if book, err = tx.BookForUpdate(ctx, input.BookID); err != nil {
			return fmt.Errorf("get book: %w", err)
		}
		if book.Stock <= 0 {
			return domain.ErrOutOfStock
		}
		if user, err = tx.User(ctx, actor.UserID); err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		if err = tx.InsertReservation(ctx, r); err != nil {
			return fmt.Errorf("insert reservation: %w", err)
		}

		book.Stock += int(domain.StockConsume)
		if err = tx.UpdateBookStock(ctx, book.ID, book.Stock); err != nil {
			return fmt.Errorf("update stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.cache.Invalidate(ctx, book.ID)

	s.logger.Info("reservation created",
		logger.String("reservation_id", r.ID),
		logger.String("book_id", book.ID),
		logger.String("user_id", user.ID),
		logger.Int("stock", book.Stock),
	)

	s.notify(ctx, func(ctx context.Context) {
		s.notifier.NotifyReservationCreated(ctx, &user, &book, &r)
	})

	return &r, nil
}

func (s *ReservationService) Cancel(ctx context.Context, actor domain.Actor, id string) (*domain.Reservation, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	return s.transition(ctx, actor, id, domain.ReservationStatusCancelled, domain.ErrCannotCancel, false)
}

func (s *ReservationService) Complete(ctx context.Context, actor domain.Actor, id string) (*domain.Reservation, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	return s.transition(ctx, actor, id, domain.ReservationStatusCompleted, domain.ErrCannotComplete, false)
}

// UpdateStatus is the administrative status change. Callers must be admins.
func (s *ReservationService) UpdateStatus(
	ctx context.Context,
	actor domain.Actor,
	id string,
	status domain.ReservationStatus,
) (*domain.Reservation, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	if !actor.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}
	if _, err := domain.ParseReservationStatus(string(status)); err != nil {
		return nil, err
	}
	return s.transition(ctx, actor, id, status, nil, s.legacyAdminOverwrite)
}

func (s *ReservationService) transition(
	ctx context.Context,
	actor domain.Actor,
	id string,
	to domain.ReservationStatus,
	illegal error,
	overwrite bool,
) (*domain.Reservation, error) {
	var (
		r      domain.Reservation
		book   domain.Book
		user   domain.User
		from   domain.ReservationStatus
		effect domain.StockEffect
	)

	err := s.store.InTx(ctx, func(ctx context.Context, tx ports.LedgerTx) error {
		var err error
		if r, err = tx.ReservationForUpdate(ctx, id); err != nil {
			return fmt.Errorf("get reservation: %w", err)
		}
		if !actor.IsAdmin() && r.UserID != actor.UserID {
			return domain.ErrNotOwner
		}

		from = r.Status
		if overwrite {
			effect = from.OverwriteEffect(to)
		} else if effect, err = from.Transition(to); err != nil {
			if illegal != nil {
				return fmt.Errorf("%w: status is %s", illegal, from)
			}
			return err
		}

		if book, err = tx.BookForUpdate(ctx, r.BookID); err != nil {
			return fmt.Errorf("get book: %w", err)
		}
		if user, err = tx.User(ctx, r.UserID); err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		if effect != domain.StockUnchanged {
			book.Stock += int(effect)
			if err = tx.UpdateBookStock(ctx, book.ID, book.Stock); err != nil {
				return fmt.Errorf("update stock: %w", err)
			}
		}

		r.Status = to
		r.UpdatedAt = s.now().UTC()
		if err = tx.UpdateReservationStatus(ctx, r.ID, r.Status, r.UpdatedAt); err != nil {
			return fmt.Errorf("update reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("set reservation status %s: %w", to, err)
	}

	if effect != domain.StockUnchanged {
		s.cache.Invalidate(ctx, book.ID)
	}

	s.logger.Info("reservation status changed",
		logger.String("reservation_id", r.ID),
		logger.String("from", string(from)),
		logger.String("to", string(to)),
		logger.Int("stock_effect", int(effect)),
		logger.String("actor_id", actor.UserID),
	)

	switch to {
	case domain.ReservationStatusCancelled:
		s.notify(ctx, func(ctx context.Context) {
			s.notifier.NotifyReservationCancelled(ctx, &user, &book, &r)
		})
	case domain.ReservationStatusCompleted:
		s.notify(ctx, func(ctx context.Context) {
			s.notifier.NotifyReservationCompleted(ctx, &user, &book, &r)
		})
	}

	return &r, nil
}

func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]domain.ReservationDetails, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	res, err := s.store.ListReservations(ctx, domain.ReservationFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("list reservations by user: %w", err)
	}
	return res, nil
}

func (s *ReservationService) ListAll(ctx context.Context) ([]domain.ReservationDetails, error) {
	res, err := s.store.ListReservations(ctx, domain.ReservationFilter{})
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return res, nil
}

// ReleaseExpired cancels active reservations whose end date is over,
// returning their units to stock. The end date itself is still covered.
func (s *ReservationService) ReleaseExpired(ctx context.Context) ([]domain.Reservation, error) {
	expired, err := s.store.ListReservations(ctx, domain.ReservationFilter{
		Status:    domain.ReservationStatusActive,
		EndBefore: domain.ExpiryCutoff(s.now()),
	})
	if err != nil {
		return nil, fmt.Errorf("list expired: %w", err)
	}

	var released []domain.Reservation
	for _, d := range expired {
		if err = ctx.Err(); err != nil {
			return released, err
		}

		r, err := s.transition(ctx, systemActor, d.Reservation.ID,
			domain.ReservationStatusCancelled, domain.ErrCannotCancel, false)
		if err != nil {
			// changed by someone else since the listing
			if errors.Is(err, domain.ErrInvalidState) {
				continue
			}
			s.logger.Error("failed to release expired reservation",
				logger.String("reservation_id", d.Reservation.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		released = append(released, *r)
	}

	if len(released) > 0 {
		s.logger.Info("expired reservations released",
			logger.Int("count", len(released)),
		)
	}

	return released, nil
}

// Wait blocks until all notifications queued so far have been handed to the notifier.
func (s *ReservationService) Wait() {
	s.pending.Wait()
}

func (s *ReservationService) notify(ctx context.Context, fn func(ctx context.Context)) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		fn(context.WithoutCancel(ctx))
	}()
}
