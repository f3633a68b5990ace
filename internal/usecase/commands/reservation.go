package commands

import (
	"context"
	"strings"
	"time"

	"hostboard/internal/domain/reservation"
	"hostboard/internal/infra"
	"hostboard/internal/pkg/cache"
	"hostboard/internal/pkg/errs"
	"hostboard/internal/pkg/patch"
	"hostboard/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrInvalidReservationID    = errs.New("invalid reservation id")
	ErrSyncedReadOnly          = errs.New("synced reservations are read-only")
	ErrNotAvailable            = errs.New("property not available for the requested dates")
	ErrInvalidStayPeriod       = errs.New("invalid stay period")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrInvalidStatusTransition = errs.New("invalid status transition")
	ErrStoreOperationFailed    = errs.New("store operation failed")
)

type GuestParams struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	BirthDate    *time.Time
	Nationality  string
	DocumentType string
	DocumentNo   string
}

type CreateReservationParams struct {
	PropertyID  uuid.UUID
	UserID      uuid.UUID
	Guests      []GuestParams
	MainGuestID string
	CheckIn     time.Time
	CheckOut    time.Time
	Status      string
	Source      string
	ExternalRef *string
	Notes       string
}

type UpdateReservationParams struct {
	CheckIn     *time.Time
	CheckOut    *time.Time
	Guests      []GuestParams
	MainGuestID *string
	Status      *string
	Notes       *string
}

type ReservationWriteRepo interface {
	Create(ctx context.Context, res *reservation.Reservation) (queries.ManualReservationRow, error)
	Update(ctx context.Context, res *reservation.Reservation) (queries.ManualReservationRow, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReservationReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.ManualReservationRow, error)
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error)
	UpdateReservation(ctx context.Context, id string, params UpdateReservationParams) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, id string) error
	CompleteReservation(ctx context.Context, id string) error
	DeleteReservation(ctx context.Context, id string) error
}

// reservationCommandsImpl is the mutation gateway for manual reservations:
// every write validates, checks availability where dates are involved, hits
// the store, and only after a settled success invalidates the cache keys the
// write made stale. Synced records never pass through here.
type reservationCommandsImpl struct {
	writeRepo    ReservationWriteRepo
	reads        ReservationReads
	availability queries.AvailabilityQueries
	cache        *cache.Cache
}

func NewReservationCommands(
	writeRepo ReservationWriteRepo,
	reads ReservationReads,
	availability queries.AvailabilityQueries,
	queryCache *cache.Cache,
) ReservationCommands {
	return &reservationCommandsImpl{
		writeRepo:    writeRepo,
		reads:        reads,
		availability: availability,
		cache:        queryCache,
	}
}

func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error) {
	period, err := reservation.NewStayPeriod(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayPeriod)
	}

	guests, mainGuestID := guestsFromParams(params.Guests, params.MainGuestID)
	entity, err := reservation.NewReservation(
		params.PropertyID,
		params.UserID,
		guests,
		mainGuestID,
		period,
		reservation.Status(params.Status),
		reservation.Source(params.Source),
		params.ExternalRef,
		params.Notes,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	available, err := c.availability.IsAvailable(ctx, params.PropertyID, period.CheckIn(), period.CheckOut(), nil)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	if !available {
		return nil, ErrNotAvailable
	}

	var row queries.ManualReservationRow
	err = c.mutate(ctx,
		func(ctx context.Context) error {
			var createErr error
			row, createErr = c.writeRepo.Create(ctx, entity)
			return createErr
		},
		queries.UserReservationsKey(params.UserID),
		queries.PropertyReservationsKey(params.PropertyID),
	)
	if err != nil {
		return nil, err
	}

	view := queries.NormalizeManual(row)
	return &view, nil
}

func (c *reservationCommandsImpl) UpdateReservation(ctx context.Context, id string, params UpdateReservationParams) (*queries.ReservationView, error) {
	current, resID, err := c.loadManual(ctx, id)
	if err != nil {
		return nil, err
	}

	checkIn := patch.Coalesce(params.CheckIn, current.CheckIn)
	checkOut := patch.Coalesce(params.CheckOut, current.CheckOut)
	period, err := reservation.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayPeriod)
	}

	currentStatus := statusFromRaw(current.RawStatus)
	nextStatus := currentStatus
	if params.Status != nil {
		nextStatus = reservation.Status(*params.Status)
		if !currentStatus.CanTransitionTo(nextStatus) {
			return nil, ErrInvalidStatusTransition
		}
	}

	guests := guestRowsToParams(current.Guests)
	if params.Guests != nil {
		guests = params.Guests
	}
	mainGuestID := patch.Coalesce(params.MainGuestID, current.MainGuestID)
	domainGuests, mainGuestID := guestsFromParams(guests, mainGuestID)

	entity, err := reservation.ReconstructReservationChecked(
		resID,
		current.PropertyID,
		current.UserID,
		domainGuests,
		mainGuestID,
		period,
		nextStatus,
		reservation.Source(current.Source),
		current.ExternalRef,
		patch.Coalesce(params.Notes, current.Notes),
		current.CreatedAt,
		current.UpdatedAt,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	// Re-check availability whenever the stay moves, excluding the record
	// being edited so it never conflicts with itself.
	datesChanged := !period.CheckIn().Equal(dateOnly(current.CheckIn)) || !period.CheckOut().Equal(dateOnly(current.CheckOut))
	if datesChanged && nextStatus != reservation.StatusCancelled {
		available, availErr := c.availability.IsAvailable(ctx, current.PropertyID, period.CheckIn(), period.CheckOut(), &resID)
		if availErr != nil {
			return nil, errs.Mark(availErr, ErrStoreOperationFailed)
		}
		if !available {
			return nil, ErrNotAvailable
		}
	}

	var row queries.ManualReservationRow
	err = c.mutate(ctx,
		func(ctx context.Context) error {
			var updateErr error
			row, updateErr = c.writeRepo.Update(ctx, entity)
			return updateErr
		},
		queries.UserReservationsKey(current.UserID),
		queries.PropertyReservationsKey(current.PropertyID),
	)
	if err != nil {
		return nil, err
	}

	view := queries.NormalizeManual(row)
	return &view, nil
}

func (c *reservationCommandsImpl) CancelReservation(ctx context.Context, id string) error {
	return c.transition(ctx, id, reservation.StatusCancelled)
}

func (c *reservationCommandsImpl) CompleteReservation(ctx context.Context, id string) error {
	return c.transition(ctx, id, reservation.StatusCompleted)
}

func (c *reservationCommandsImpl) DeleteReservation(ctx context.Context, id string) error {
	current, resID, err := c.loadManual(ctx, id)
	if err != nil {
		return err
	}

	return c.mutate(ctx,
		func(ctx context.Context) error {
			return c.writeRepo.Delete(ctx, resID)
		},
		queries.UserReservationsKey(current.UserID),
		queries.PropertyReservationsKey(current.PropertyID),
	)
}

func (c *reservationCommandsImpl) transition(ctx context.Context, id string, next reservation.Status) error {
	current, resID, err := c.loadManual(ctx, id)
	if err != nil {
		return err
	}

	if !statusFromRaw(current.RawStatus).CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}

	return c.mutate(ctx,
		func(ctx context.Context) error {
			return c.writeRepo.UpdateStatus(ctx, resID, next)
		},
		queries.UserReservationsKey(current.UserID),
		queries.PropertyReservationsKey(current.PropertyID),
	)
}

// mutate runs op and, only after settled success, removes the named cache
// entries so the next read observes the write. A failed or cancelled write
// leaves the cache untouched because its outcome is unknown.
func (c *reservationCommandsImpl) mutate(ctx context.Context, op func(ctx context.Context) error, invalidates ...string) error {
	if err := op(ctx); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	c.cache.Invalidate(invalidates...)
	return nil
}

// loadManual resolves a unified-view ID to a manual reservation row,
// rejecting synced IDs before any store call.
func (c *reservationCommandsImpl) loadManual(ctx context.Context, id string) (*queries.ManualReservationRow, uuid.UUID, error) {
	if strings.HasPrefix(id, queries.SyncedIDPrefix) {
		return nil, uuid.Nil, ErrSyncedReadOnly
	}
	resID, err := uuid.Parse(id)
	if err != nil {
		return nil, uuid.Nil, ErrInvalidReservationID
	}

	row, err := c.reads.FindByID(ctx, resID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, uuid.Nil, ErrReservationNotFound
		}
		return nil, uuid.Nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return row, resID, nil
}

func guestsFromParams(params []GuestParams, mainGuestID string) ([]reservation.Guest, string) {
	guests := make([]reservation.Guest, len(params))
	for i, p := range params {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		guests[i] = reservation.Guest{
			ID:           id,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			Email:        p.Email,
			Phone:        p.Phone,
			BirthDate:    p.BirthDate,
			Nationality:  p.Nationality,
			DocumentType: p.DocumentType,
			DocumentNo:   p.DocumentNo,
		}
	}
	if mainGuestID == "" && len(guests) > 0 {
		mainGuestID = guests[0].ID
	}
	return guests, mainGuestID
}

func guestRowsToParams(rows []queries.GuestRow) []GuestParams {
	params := make([]GuestParams, len(rows))
	for i, r := range rows {
		params[i] = GuestParams{
			ID:           r.ID,
			FirstName:    r.FirstName,
			LastName:     r.LastName,
			Email:        r.Email,
			Phone:        r.Phone,
			BirthDate:    r.BirthDate,
			Nationality:  r.Nationality,
			DocumentType: r.DocumentType,
			DocumentNo:   r.DocumentNo,
		}
	}
	return params
}

func statusFromRaw(raw string) reservation.Status {
	switch raw {
	case "active":
		return reservation.StatusConfirmed
	case "cancelled":
		return reservation.StatusCancelled
	case "completed":
		return reservation.StatusCompleted
	default:
		return reservation.StatusPending
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
