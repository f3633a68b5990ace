//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hostboard/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func period(t *testing.T, in, out time.Time) reservation.StayPeriod {
	t.Helper()
	p, err := reservation.NewStayPeriod(in, out)
	require.NoError(t, err)
	return p
}

func TestNewStayPeriod(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		p, err := reservation.NewStayPeriod(date(2025, 6, 10), date(2025, 6, 15))
		require.NoError(t, err)
		assert.Equal(t, date(2025, 6, 10), p.CheckIn())
		assert.Equal(t, date(2025, 6, 15), p.CheckOut())
		assert.Equal(t, 5, p.Nights())
	})

	t.Run("check-out equal to check-in is rejected", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(date(2025, 6, 10), date(2025, 6, 10))
		assert.Error(t, err)
	})

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(date(2025, 6, 15), date(2025, 6, 10))
		assert.Error(t, err)
	})

	t.Run("time-of-day is normalized away", func(t *testing.T) {
		p, err := reservation.NewStayPeriod(
			time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC),
			time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, date(2025, 6, 10), p.CheckIn())
		assert.Equal(t, date(2025, 6, 12), p.CheckOut())
	})
}

func TestStayPeriodOverlaps(t *testing.T) {
	existing := period(t, date(2025, 6, 10), date(2025, 6, 15))

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		overlaps bool
	}{
		{
			name:     "back-to-back after existing does not overlap",
			checkIn:  date(2025, 6, 15),
			checkOut: date(2025, 6, 20),
			overlaps: false,
		},
		{
			name:     "back-to-back before existing does not overlap",
			checkIn:  date(2025, 6, 5),
			checkOut: date(2025, 6, 10),
			overlaps: false,
		},
		{
			name:     "one day of intersection overlaps",
			checkIn:  date(2025, 6, 14),
			checkOut: date(2025, 6, 20),
			overlaps: true,
		},
		{
			name:     "fully contained overlaps",
			checkIn:  date(2025, 6, 11),
			checkOut: date(2025, 6, 13),
			overlaps: true,
		},
		{
			name:     "fully containing overlaps",
			checkIn:  date(2025, 6, 1),
			checkOut: date(2025, 6, 30),
			overlaps: true,
		},
		{
			name:     "identical range overlaps",
			checkIn:  date(2025, 6, 10),
			checkOut: date(2025, 6, 15),
			overlaps: true,
		},
		{
			name:     "disjoint after does not overlap",
			checkIn:  date(2025, 7, 1),
			checkOut: date(2025, 7, 5),
			overlaps: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			proposed := period(t, tc.checkIn, tc.checkOut)
			assert.Equal(t, tc.overlaps, proposed.Overlaps(existing))
			// overlap is symmetric
			assert.Equal(t, tc.overlaps, existing.Overlaps(proposed))
		})
	}
}

func TestGuestFullName(t *testing.T) {
	assert.Equal(t, "Ana Silva", reservation.Guest{FirstName: "Ana", LastName: "Silva"}.FullName())
	assert.Equal(t, "Ana", reservation.Guest{FirstName: "Ana"}.FullName())
	assert.Equal(t, "Silva", reservation.Guest{LastName: "Silva"}.FullName())
	assert.Equal(t, "", reservation.Guest{}.FullName())
}
