package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/stpnv0/LibraryBooker/internal/cache"
	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/stpnv0/LibraryBooker/internal/repository/memory"
	"github.com/wb-go/wbf/logger"
)

type discardNotifier struct{}

func (discardNotifier) NotifyReservationCreated(context.Context, *domain.User, *domain.Book, *domain.Reservation) {
}

func (discardNotifier) NotifyReservationCancelled(context.Context, *domain.User, *domain.Book, *domain.Reservation) {
}

func (discardNotifier) NotifyReservationCompleted(context.Context, *domain.User, *domain.Book, *domain.Reservation) {
}

type ledgerTestContext struct {
	log    logger.Logger
	store  *memory.Store
	svc    *ReservationService
	legacy bool

	books        map[string]string
	actors       map[string]domain.Actor
	reservations map[string]string
	err          error
}

func (c *ledgerTestContext) reset() {
	c.store = memory.New()
	c.svc = nil
	c.legacy = false
	c.books = make(map[string]string)
	c.actors = make(map[string]domain.Actor)
	c.reservations = make(map[string]string)
	c.err = nil
}

func (c *ledgerTestContext) service() *ReservationService {
	if c.svc == nil {
		c.svc = NewReservationService(
			c.store.Ledger(), cache.Noop{}, discardNotifier{}, c.log,
			WithLegacyAdminOverwrite(c.legacy),
		)
	}
	return c.svc
}

func (c *ledgerTestContext) aBookWithCopiesInStock(title string, stock int) error {
	id := uuid.New().String()
	c.books[title] = id
	return c.store.Books().Create(context.Background(), &domain.Book{
		ID: id, Title: title, Author: "unknown", ISBN: id, Stock: stock,
		CreatedAt: time.Now().UTC(),
	})
}

func (c *ledgerTestContext) addUser(name string, role domain.Role) error {
	id := uuid.New().String()
	c.actors[name] = domain.Actor{UserID: id, Role: role}
	return c.store.Users().Create(context.Background(), &domain.User{
		ID: id, Username: name, Email: name + "@example.com", Role: role,
	})
}

func (c *ledgerTestContext) aReader(name string) error { return c.addUser(name, domain.RoleUser) }

func (c *ledgerTestContext) anAdmin(name string) error { return c.addUser(name, domain.RoleAdmin) }

func (c *ledgerTestContext) legacyAdminOverwriteIsEnabled() error {
	if c.svc != nil {
		return fmt.Errorf("service already started")
	}
	c.legacy = true
	return nil
}

func (c *ledgerTestContext) reservesAs(user, title, label string) error {
	now := time.Now()
	r, err := c.service().Create(context.Background(), c.actors[user], domain.CreateReservationInput{
		BookID:    c.books[title],
		StartDate: now,
		EndDate:   now.AddDate(0, 0, 14),
	})
	c.err = err
	if err == nil {
		c.reservations[label] = r.ID
	}
	return nil
}

func (c *ledgerTestContext) cancelsReservation(user, label string) error {
	_, c.err = c.service().Cancel(context.Background(), c.actors[user], c.reservations[label])
	return nil
}

func (c *ledgerTestContext) completesReservation(user, label string) error {
	_, c.err = c.service().Complete(context.Background(), c.actors[user], c.reservations[label])
	return nil
}

func (c *ledgerTestContext) setsReservationTo(user, label, status string) error {
	_, c.err = c.service().UpdateStatus(
		context.Background(), c.actors[user], c.reservations[label], domain.ReservationStatus(status),
	)
	return nil
}

func (c *ledgerTestContext) theRequestSucceeds() error {
	if c.err != nil {
		return fmt.Errorf("expected success, got %v", c.err)
	}
	return nil
}

func (c *ledgerTestContext) theRequestFailsWith(msg string) error {
	if c.err == nil {
		return fmt.Errorf("expected error %q, got success", msg)
	}
	if !strings.Contains(c.err.Error(), msg) {
		return fmt.Errorf("expected error containing %q, got %q", msg, c.err.Error())
	}
	return nil
}

func (c *ledgerTestContext) hasCopiesInStock(title string, stock int) error {
	b, err := c.store.Books().GetByID(context.Background(), c.books[title])
	if err != nil {
		return err
	}
	if b.Stock != stock {
		return fmt.Errorf("expected stock %d, got %d", stock, b.Stock)
	}
	return nil
}

func (c *ledgerTestContext) reservationIs(label, status string) error {
	all, err := c.service().ListAll(context.Background())
	if err != nil {
		return err
	}
	for _, d := range all {
		if d.Reservation.ID == c.reservations[label] {
			if string(d.Reservation.Status) != status {
				return fmt.Errorf("expected status %s, got %s", status, d.Reservation.Status)
			}
			return nil
		}
	}
	return fmt.Errorf("reservation %q not found", label)
}

func initializeLedgerScenario(log logger.Logger) func(ctx *godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		tc := &ledgerTestContext{log: log}

		ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
			tc.reset()
			return ctx, nil
		})

		ctx.Step(`^a book "([^"]*)" with (\d+) copies in stock$`, tc.aBookWithCopiesInStock)
		ctx.Step(`^a reader "([^"]*)"$`, tc.aReader)
		ctx.Step(`^an admin "([^"]*)"$`, tc.anAdmin)
		ctx.Step(`^legacy admin overwrite is enabled$`, tc.legacyAdminOverwriteIsEnabled)

		ctx.Step(`^"([^"]*)" reserves "([^"]*)" as "([^"]*)"$`, tc.reservesAs)
		ctx.Step(`^"([^"]*)" cancels reservation "([^"]*)"$`, tc.cancelsReservation)
		ctx.Step(`^"([^"]*)" completes reservation "([^"]*)"$`, tc.completesReservation)
		ctx.Step(`^"([^"]*)" sets reservation "([^"]*)" to "([^"]*)"$`, tc.setsReservationTo)

		ctx.Step(`^the request succeeds$`, tc.theRequestSucceeds)
		ctx.Step(`^the request fails with "([^"]*)"$`, tc.theRequestFailsWith)
		ctx.Step(`^"([^"]*)" has (\d+) copies in stock$`, tc.hasCopiesInStock)
		ctx.Step(`^reservation "([^"]*)" is "([^"]*)"$`, tc.reservationIs)
	}
}

func TestLedgerFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeLedgerScenario(newTestLogger(t)),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/reservation_ledger.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
