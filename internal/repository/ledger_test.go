package repository

import (
	"testing"
	"time"

	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReservationsQuery_NoFilter(t *testing.T) {
	query, args, err := listReservationsQuery(domain.ReservationFilter{})
	require.NoError(t, err)

	assert.Contains(t, query, `FROM "reservations" AS "r"`)
	assert.Contains(t, query, `"books" AS "b"`)
	assert.Contains(t, query, `"users" AS "u"`)
	assert.Contains(t, query, `ORDER BY "r"."created_at" DESC, "r"."id" DESC`)
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestListReservationsQuery_Filters(t *testing.T) {
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := listReservationsQuery(domain.ReservationFilter{
		UserID:    "u1",
		Status:    domain.ReservationStatusActive,
		EndBefore: cutoff,
	})
	require.NoError(t, err)

	assert.Contains(t, query, `"r"."user_id" = $1`)
	assert.Contains(t, query, `"r"."status" = $2`)
	assert.Contains(t, query, `"r"."end_date" < $3`)
	require.Len(t, args, 3)
	assert.Equal(t, "u1", args[0])
	assert.Equal(t, "active", args[1])
	assert.Equal(t, cutoff, args[2])
}

func TestListReservationsQuery_UserOnly(t *testing.T) {
	query, args, err := listReservationsQuery(domain.ReservationFilter{UserID: "u1"})
	require.NoError(t, err)

	assert.Contains(t, query, `"r"."user_id" = $1`)
	assert.NotContains(t, query, `"r"."status" =`)
	assert.Equal(t, []any{"u1"}, args)
}
