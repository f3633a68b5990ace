//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"hostboard/internal/pkg/cache"
	"hostboard/internal/pkg/clock"
	"hostboard/internal/pkg/config"
	"hostboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManualRepo struct {
	rows  []queries.ManualReservationRow
	err   error
	calls int
}

func (f *fakeManualRepo) FindByUserID(_ context.Context, _ uuid.UUID) ([]queries.ManualReservationRow, error) {
	f.calls++
	return f.rows, f.err
}

func (f *fakeManualRepo) FindByPropertyID(_ context.Context, _ uuid.UUID) ([]queries.ManualReservationRow, error) {
	f.calls++
	return f.rows, f.err
}

type fakeSyncedRepo struct {
	rows  []queries.SyncedBookingRow
	err   error
	calls int
}

func (f *fakeSyncedRepo) ListByUserID(_ context.Context, _ uuid.UUID) ([]queries.SyncedBookingRow, error) {
	f.calls++
	return f.rows, f.err
}

func (f *fakeSyncedRepo) ListByPropertyID(_ context.Context, _ uuid.UUID) ([]queries.SyncedBookingRow, error) {
	f.calls++
	return f.rows, f.err
}

func newAggregator(manual *fakeManualRepo, synced *fakeSyncedRepo) (queries.ReservationQueries, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	c := cache.New(clk)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return queries.NewReservationQueries(manual, synced, c, config.NewTestConfig().Cache, logger), clk
}

func manualRowWithDates(checkIn, checkOut time.Time, rawStatus string) queries.ManualReservationRow {
	row := manualRow(uuid.New())
	row.CheckIn = checkIn
	row.CheckOut = checkOut
	row.RawStatus = rawStatus
	return row
}

func TestGetPropertyReservations(t *testing.T) {
	propertyID := uuid.MustParse("7b9f1f3e-9d1e-4a60-9f0f-0a1b2c3d4e5f")

	t.Run("merges both sources into one sorted view", func(t *testing.T) {
		manual := &fakeManualRepo{rows: []queries.ManualReservationRow{
			manualRowWithDates(
				time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
				"active",
			),
		}}
		syncedRows := syncedRow()
		syncedRows.CheckIn = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
		syncedRows.CheckOut = time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
		synced := &fakeSyncedRepo{rows: []queries.SyncedBookingRow{syncedRows}}

		q, _ := newAggregator(manual, synced)
		views, err := q.GetPropertyReservations(context.Background(), propertyID)
		require.NoError(t, err)
		require.Len(t, views, 2)

		// Later check-in first.
		assert.Equal(t, "synced-HMABC123", views[0].ID)
		assert.True(t, views[0].IsSynced)
		assert.Equal(t, "confirmed", views[0].Status)
		assert.Equal(t, 1, views[0].TotalGuests)

		assert.False(t, views[1].IsSynced)
		assert.Equal(t, "confirmed", views[1].Status)
		assert.Equal(t, 2, views[1].TotalGuests)
	})

	t.Run("sorts descending by check-in", func(t *testing.T) {
		day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
		manual := &fakeManualRepo{rows: []queries.ManualReservationRow{
			manualRowWithDates(day(3), day(5), "active"),
			manualRowWithDates(day(20), day(22), "pending"),
			manualRowWithDates(day(10), day(11), "completed"),
		}}
		q, _ := newAggregator(manual, &fakeSyncedRepo{})

		views, err := q.GetPropertyReservations(context.Background(), propertyID)
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, day(20), views[0].CheckIn)
		assert.Equal(t, day(10), views[1].CheckIn)
		assert.Equal(t, day(3), views[2].CheckIn)
	})

	t.Run("manual failure fails the call", func(t *testing.T) {
		manual := &fakeManualRepo{err: errors.New("connection refused")}
		synced := &fakeSyncedRepo{rows: []queries.SyncedBookingRow{syncedRow()}}
		q, _ := newAggregator(manual, synced)

		_, err := q.GetPropertyReservations(context.Background(), propertyID)
		assert.Error(t, err)
	})

	t.Run("synced failure degrades to manual-only", func(t *testing.T) {
		manual := &fakeManualRepo{rows: []queries.ManualReservationRow{manualRow(uuid.New())}}
		synced := &fakeSyncedRepo{err: errors.New("feed timeout")}
		q, _ := newAggregator(manual, synced)

		views, err := q.GetPropertyReservations(context.Background(), propertyID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.False(t, views[0].IsSynced)
	})

	t.Run("both sources empty yields an empty slice", func(t *testing.T) {
		q, _ := newAggregator(&fakeManualRepo{}, &fakeSyncedRepo{})

		views, err := q.GetPropertyReservations(context.Background(), propertyID)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("second read within TTL is served from cache", func(t *testing.T) {
		manual := &fakeManualRepo{rows: []queries.ManualReservationRow{manualRow(uuid.New())}}
		synced := &fakeSyncedRepo{}
		q, clk := newAggregator(manual, synced)

		_, err := q.GetPropertyReservations(context.Background(), propertyID)
		require.NoError(t, err)

		clk.Advance(30 * time.Second)
		views, err := q.GetPropertyReservations(context.Background(), propertyID)
		require.NoError(t, err)
		assert.Len(t, views, 1)
		assert.Equal(t, 1, manual.calls)
		assert.Equal(t, 1, synced.calls)
	})

	t.Run("expired entry triggers a fresh fetch", func(t *testing.T) {
		manual := &fakeManualRepo{rows: []queries.ManualReservationRow{manualRow(uuid.New())}}
		q, clk := newAggregator(manual, &fakeSyncedRepo{})

		_, err := q.GetPropertyReservations(context.Background(), propertyID)
		require.NoError(t, err)

		clk.Advance(config.NewTestConfig().Cache.ReservationListTTL)
		_, err = q.GetPropertyReservations(context.Background(), propertyID)
		require.NoError(t, err)
		assert.Equal(t, 2, manual.calls)
	})

	t.Run("cancelled context is not cached", func(t *testing.T) {
		manual := &fakeManualRepo{rows: []queries.ManualReservationRow{manualRow(uuid.New())}}
		q, _ := newAggregator(manual, &fakeSyncedRepo{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := q.GetPropertyReservations(ctx, propertyID)
		assert.ErrorIs(t, err, context.Canceled)

		_, err = q.GetPropertyReservations(context.Background(), propertyID)
		require.NoError(t, err)
		assert.Equal(t, 2, manual.calls)
	})
}

func TestGetUserReservations(t *testing.T) {
	userID := uuid.MustParse("c0a80101-0000-4000-8000-000000000001")

	t.Run("user and property results cache under distinct keys", func(t *testing.T) {
		manual := &fakeManualRepo{rows: []queries.ManualReservationRow{manualRow(uuid.New())}}
		q, _ := newAggregator(manual, &fakeSyncedRepo{})

		_, err := q.GetUserReservations(context.Background(), userID)
		require.NoError(t, err)
		_, err = q.GetPropertyReservations(context.Background(), userID)
		require.NoError(t, err)

		// Same UUID, different key space: both reads hit the stores.
		assert.Equal(t, 2, manual.calls)
	})
}
