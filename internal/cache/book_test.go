package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestBookCache_GetHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewBookCache(client, time.Minute, newTestLogger(t))

	book := domain.Book{ID: "b1", Title: "Dune", Stock: 3}
	data, err := json.Marshal(book)
	require.NoError(t, err)
	mock.ExpectGet("library:book:b1").SetVal(string(data))

	got, ok := c.Get(context.Background(), "b1")

	require.True(t, ok)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, 3, got.Stock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookCache_GetMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewBookCache(client, time.Minute, newTestLogger(t))

	mock.ExpectGet("library:book:b1").RedisNil()

	_, ok := c.Get(context.Background(), "b1")

	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookCache_GetErrorIsMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewBookCache(client, time.Minute, newTestLogger(t))

	mock.ExpectGet("library:book:b1").SetErr(errors.New("connection refused"))

	_, ok := c.Get(context.Background(), "b1")

	assert.False(t, ok)
}

func TestBookCache_Set(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewBookCache(client, time.Minute, newTestLogger(t))

	book := &domain.Book{ID: "b1", Title: "Dune"}
	data, err := json.Marshal(book)
	require.NoError(t, err)
	mock.ExpectSet("library:book:b1", data, time.Minute).SetVal("OK")

	c.Set(context.Background(), book)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookCache_Invalidate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewBookCache(client, time.Minute, newTestLogger(t))

	mock.ExpectDel("library:book:b1").SetVal(1)

	c.Invalidate(context.Background(), "b1")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoop(t *testing.T) {
	var c Noop
	c.Set(context.Background(), &domain.Book{ID: "b1"})
	_, ok := c.Get(context.Background(), "b1")
	assert.False(t, ok)
	c.Invalidate(context.Background(), "b1")
}
