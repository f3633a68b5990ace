package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ConflictingReservationRepo returns the manual reservations for a property
// whose status is not cancelled and whose stored half-open stay interval
// intersects [checkIn, checkOut), minus the optional excluded record. The
// predicate is stored.checkIn < checkOut AND stored.checkOut > checkIn, so
// back-to-back stays never conflict.
type ConflictingReservationRepo interface {
	FindOverlapping(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time, excludeID *uuid.UUID) ([]ManualReservationRow, error)
}

type AvailabilityQueries interface {
	IsAvailable(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time, excludeID *uuid.UUID) (bool, error)
}

type availabilityQueriesImpl struct {
	repo ConflictingReservationRepo
}

func NewAvailabilityQueries(repo ConflictingReservationRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo}
}

// IsAvailable checks manual reservations only. Synced bookings are advisory
// and do not participate in conflict detection.
func (q *availabilityQueriesImpl) IsAvailable(
	ctx context.Context,
	propertyID uuid.UUID,
	checkIn, checkOut time.Time,
	excludeID *uuid.UUID,
) (bool, error) {
	conflicts, err := q.repo.FindOverlapping(ctx, propertyID, checkIn, checkOut, excludeID)
	if err != nil {
		return false, err
	}
	return len(conflicts) == 0, nil
}
