package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayPeriod = errors.New("invalid stay period")
	ErrNoGuests          = errors.New("reservation needs at least one guest")
	ErrMissingMainGuest  = errors.New("main guest not present in guest list")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidSource     = errors.New("invalid booking source")
)

// Reservation is a manually entered booking, the authoritative record for a
// property's availability. Synced bookings never pass through here; they are
// materialized read-side only.
type Reservation struct {
	id          uuid.UUID
	propertyID  uuid.UUID
	userID      uuid.UUID
	guests      []Guest
	mainGuestID string
	period      StayPeriod
	status      Status
	source      Source
	externalRef *string
	notes       string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(
	propertyID, userID uuid.UUID,
	guests []Guest,
	mainGuestID string,
	period StayPeriod,
	status Status,
	source Source,
	externalRef *string,
	notes string,
) (*Reservation, error) {
	if period.IsZero() {
		return nil, ErrInvalidStayPeriod
	}
	if len(guests) == 0 {
		return nil, ErrNoGuests
	}
	if countGuestID(guests, mainGuestID) != 1 {
		return nil, ErrMissingMainGuest
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !source.IsValid() {
		return nil, ErrInvalidSource
	}

	return &Reservation{
		id:          uuid.New(),
		propertyID:  propertyID,
		userID:      userID,
		guests:      guests,
		mainGuestID: mainGuestID,
		period:      period,
		status:      status,
		source:      source,
		externalRef: externalRef,
		notes:       notes,
	}, nil
}

// ReconstructReservationChecked rebuilds an existing reservation while
// re-running the construction invariants, for updates that replace guest or
// stay data.
func ReconstructReservationChecked(
	id, propertyID, userID uuid.UUID,
	guests []Guest,
	mainGuestID string,
	period StayPeriod,
	status Status,
	source Source,
	externalRef *string,
	notes string,
	createdAt, updatedAt time.Time,
) (*Reservation, error) {
	if period.IsZero() {
		return nil, ErrInvalidStayPeriod
	}
	if len(guests) == 0 {
		return nil, ErrNoGuests
	}
	if countGuestID(guests, mainGuestID) != 1 {
		return nil, ErrMissingMainGuest
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !source.IsValid() {
		return nil, ErrInvalidSource
	}
	return ReconstructReservation(id, propertyID, userID, guests, mainGuestID, period, status, source, externalRef, notes, createdAt, updatedAt), nil
}

func ReconstructReservation(
	id, propertyID, userID uuid.UUID,
	guests []Guest,
	mainGuestID string,
	period StayPeriod,
	status Status,
	source Source,
	externalRef *string,
	notes string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		propertyID:  propertyID,
		userID:      userID,
		guests:      guests,
		mainGuestID: mainGuestID,
		period:      period,
		status:      status,
		source:      source,
		externalRef: externalRef,
		notes:       notes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) PropertyID() uuid.UUID { return r.propertyID }
func (r *Reservation) UserID() uuid.UUID     { return r.userID }
func (r *Reservation) Guests() []Guest       { return r.guests }
func (r *Reservation) MainGuestID() string   { return r.mainGuestID }
func (r *Reservation) Period() StayPeriod    { return r.period }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) Source() Source        { return r.source }
func (r *Reservation) ExternalRef() *string  { return r.externalRef }
func (r *Reservation) Notes() string         { return r.notes }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }

func (r *Reservation) TotalGuests() int {
	return len(r.guests)
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

// BlocksAvailability reports whether this reservation participates in
// conflict detection.
func (r *Reservation) BlocksAvailability() bool {
	return r.status != StatusCancelled
}

func countGuestID(guests []Guest, id string) int {
	n := 0
	for _, g := range guests {
		if g.ID == id {
			n++
		}
	}
	return n
}
