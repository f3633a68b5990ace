package readstore

import (
	"context"
	"encoding/json"
	"time"

	"hostboard/internal/infra"
	"hostboard/internal/pkg/pgconv"
	"hostboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const manualReservationColumns = `
	id, property_id, user_id, guests, main_guest_id,
	check_in, check_out, status, source, external_ref, notes,
	created_at, updated_at
`

// ReservationReadStore reads the manually entered reservations, the
// authoritative source for availability.
type ReservationReadStore struct {
	db *pgxpool.Pool
}

func NewReservationReadStore(db *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ManualReservationRow, error) {
	query := `SELECT ` + manualReservationColumns + ` FROM reservations WHERE id = $1`

	row, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return row, nil
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]queries.ManualReservationRow, error) {
	query := `SELECT ` + manualReservationColumns + `
		FROM reservations
		WHERE user_id = $1
		ORDER BY check_in DESC`

	return r.scanMany(ctx, query, "failed to find reservations by user ID", userID)
}

func (r *ReservationReadStore) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]queries.ManualReservationRow, error) {
	query := `SELECT ` + manualReservationColumns + `
		FROM reservations
		WHERE property_id = $1
		ORDER BY check_in DESC`

	return r.scanMany(ctx, query, "failed to find reservations by property ID", propertyID)
}

// FindOverlapping returns non-cancelled manual reservations whose half-open
// [check_in, check_out) intersects the proposed range. check_in < $3 together
// with check_out > $2 keeps back-to-back stays out of the conflict set.
func (r *ReservationReadStore) FindOverlapping(
	ctx context.Context,
	propertyID uuid.UUID,
	checkIn, checkOut time.Time,
	excludeID *uuid.UUID,
) ([]queries.ManualReservationRow, error) {
	query := `SELECT ` + manualReservationColumns + `
		FROM reservations
		WHERE property_id = $1
		  AND status <> 'cancelled'
		  AND check_in < $3
		  AND check_out > $2
		  AND ($4::uuid IS NULL OR id <> $4)`

	return r.scanMany(ctx, query, "failed to find overlapping reservations", propertyID, checkIn, checkOut, excludeID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ReservationReadStore) scanOne(scanner rowScanner) (*queries.ManualReservationRow, error) {
	var (
		row       queries.ManualReservationRow
		guestsRaw []byte
	)
	err := scanner.Scan(
		&row.ID,
		&row.PropertyID,
		&row.UserID,
		&guestsRaw,
		&row.MainGuestID,
		&row.CheckIn,
		&row.CheckOut,
		&row.RawStatus,
		&row.Source,
		&row.ExternalRef,
		&row.Notes,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(guestsRaw) > 0 {
		if err := json.Unmarshal(guestsRaw, &row.Guests); err != nil {
			return nil, err
		}
	}
	return &row, nil
}

func (r *ReservationReadStore) scanMany(ctx context.Context, query, errMsg string, args ...any) ([]queries.ManualReservationRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(errMsg, err)
	}
	defer rows.Close()

	var result []queries.ManualReservationRow
	for rows.Next() {
		row, scanErr := r.scanOne(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr(errMsg, scanErr)
		}
		result = append(result, *row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(errMsg, err)
	}
	return result, nil
}
