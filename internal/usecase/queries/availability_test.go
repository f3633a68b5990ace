//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hostboard/internal/domain/reservation"
	"hostboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConflictRepo evaluates the same half-open predicate the SQL read store
// uses, against an in-memory set of rows.
type fakeConflictRepo struct {
	rows []queries.ManualReservationRow
	err  error
}

func (f *fakeConflictRepo) FindOverlapping(
	_ context.Context,
	propertyID uuid.UUID,
	checkIn, checkOut time.Time,
	excludeID *uuid.UUID,
) ([]queries.ManualReservationRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	proposed, err := reservation.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	var conflicts []queries.ManualReservationRow
	for _, row := range f.rows {
		if row.PropertyID != propertyID || row.RawStatus == "cancelled" {
			continue
		}
		if excludeID != nil && row.ID == *excludeID {
			continue
		}
		stored, err := reservation.NewStayPeriod(row.CheckIn, row.CheckOut)
		if err != nil {
			return nil, err
		}
		if stored.Overlaps(proposed) {
			conflicts = append(conflicts, row)
		}
	}
	return conflicts, nil
}

func TestIsAvailable(t *testing.T) {
	propertyID := uuid.MustParse("7b9f1f3e-9d1e-4a60-9f0f-0a1b2c3d4e5f")
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }

	stored := manualRow(uuid.New())
	stored.CheckIn = day(10)
	stored.CheckOut = day(15)

	t.Run("free property is available", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeConflictRepo{})

		ok, err := q.IsAvailable(context.Background(), propertyID, day(1), day(5), nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("overlapping stay blocks", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeConflictRepo{rows: []queries.ManualReservationRow{stored}})

		ok, err := q.IsAvailable(context.Background(), propertyID, day(12), day(20), nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("back-to-back stays do not conflict", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeConflictRepo{rows: []queries.ManualReservationRow{stored}})

		checkoutDay, err := q.IsAvailable(context.Background(), propertyID, day(15), day(18), nil)
		require.NoError(t, err)
		assert.True(t, checkoutDay, "new stay starting on the stored checkout day")

		checkinDay, err := q.IsAvailable(context.Background(), propertyID, day(5), day(10), nil)
		require.NoError(t, err)
		assert.True(t, checkinDay, "new stay ending on the stored checkin day")
	})

	t.Run("cancelled reservations never block", func(t *testing.T) {
		cancelled := stored
		cancelled.RawStatus = "cancelled"
		q := queries.NewAvailabilityQueries(&fakeConflictRepo{rows: []queries.ManualReservationRow{cancelled}})

		ok, err := q.IsAvailable(context.Background(), propertyID, day(10), day(15), nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("excluded reservation does not conflict with itself", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeConflictRepo{rows: []queries.ManualReservationRow{stored}})

		ok, err := q.IsAvailable(context.Background(), propertyID, day(11), day(16), &stored.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("other properties are ignored", func(t *testing.T) {
		other := stored
		other.PropertyID = uuid.New()
		q := queries.NewAvailabilityQueries(&fakeConflictRepo{rows: []queries.ManualReservationRow{other}})

		ok, err := q.IsAvailable(context.Background(), propertyID, day(10), day(15), nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeConflictRepo{err: errors.New("timeout")})

		_, err := q.IsAvailable(context.Background(), propertyID, day(1), day(2), nil)
		assert.Error(t, err)
	})
}
