package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func testFixtures() (*domain.Book, *domain.Reservation) {
	book := &domain.Book{Title: "Dune", Author: "Frank Herbert", Stock: 2}
	r := &domain.Reservation{
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	return book, r
}

func TestMessageTexts(t *testing.T) {
	book, r := testFixtures()

	created := createdText(book, r)
	assert.Contains(t, created, "Dune by Frank Herbert")
	assert.Contains(t, created, "01.06.2026 - 15.06.2026")
	assert.Contains(t, created, "Copies left: 2")

	assert.Contains(t, cancelledText(book, r), "Reservation cancelled")
	assert.Contains(t, completedText(book, r), "Reservation completed")
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	n, err := NewTelegramNotifier("", log)
	require.NoError(t, err)

	chatID := int64(42)
	book, r := testFixtures()
	assert.NotPanics(t, func() {
		n.NotifyReservationCreated(context.Background(), &domain.User{TelegramChatID: &chatID}, book, r)
		n.NotifyReservationCancelled(context.Background(), &domain.User{}, book, r)
		n.NotifyReservationCompleted(context.Background(), &domain.User{}, book, r)
	})
}
