package writerepo

import (
	"context"
	"encoding/json"

	"hostboard/internal/domain/reservation"
	"hostboard/internal/infra"
	"hostboard/internal/pkg/pgconv"
	"hostboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationRepository performs the writes behind the mutation gateway.
// It touches manual reservations only; synced bookings belong to the sync job.
type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (queries.ManualReservationRow, error) {
	guestsJSON, err := json.Marshal(guestRows(res.Guests()))
	if err != nil {
		return queries.ManualReservationRow{}, infra.WrapRepoErr("failed to encode guest roster", err)
	}

	query := `INSERT INTO reservations (
			id, property_id, user_id, guests, main_guest_id,
			check_in, check_out, status, source, external_ref, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
		RETURNING id, property_id, user_id, guests, main_guest_id,
			check_in, check_out, status, source, external_ref, notes,
			created_at, updated_at`

	row, err := scanReservationRow(r.db.QueryRow(ctx, query,
		res.ID(),
		res.PropertyID(),
		res.UserID(),
		guestsJSON,
		res.MainGuestID(),
		res.Period().CheckIn(),
		res.Period().CheckOut(),
		rawStatus(res.Status()),
		res.Source().String(),
		pgconv.TextPtrToPgtype(res.ExternalRef()),
		res.Notes(),
	))
	if err != nil {
		return queries.ManualReservationRow{}, infra.WrapRepoErr("failed to create reservation", err)
	}
	return row, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) (queries.ManualReservationRow, error) {
	guestsJSON, err := json.Marshal(guestRows(res.Guests()))
	if err != nil {
		return queries.ManualReservationRow{}, infra.WrapRepoErr("failed to encode guest roster", err)
	}

	query := `UPDATE reservations SET
			guests = $2, main_guest_id = $3,
			check_in = $4, check_out = $5,
			status = $6, notes = $7, updated_at = now()
		WHERE id = $1
		RETURNING id, property_id, user_id, guests, main_guest_id,
			check_in, check_out, status, source, external_ref, notes,
			created_at, updated_at`

	row, err := scanReservationRow(r.db.QueryRow(ctx, query,
		res.ID(),
		guestsJSON,
		res.MainGuestID(),
		res.Period().CheckIn(),
		res.Period().CheckOut(),
		rawStatus(res.Status()),
		res.Notes(),
	))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return queries.ManualReservationRow{}, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return queries.ManualReservationRow{}, infra.WrapRepoErr("failed to update reservation", err)
	}
	return row, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1`,
		id, rawStatus(status),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// rawStatus maps the domain vocabulary onto the store's native one, the
// inverse of the read-side normalization.
func rawStatus(s reservation.Status) string {
	switch s {
	case reservation.StatusConfirmed:
		return "active"
	case reservation.StatusCancelled:
		return "cancelled"
	case reservation.StatusCompleted:
		return "completed"
	default:
		return "pending"
	}
}

func guestRows(guests []reservation.Guest) []queries.GuestRow {
	rows := make([]queries.GuestRow, len(guests))
	for i, g := range guests {
		rows[i] = queries.GuestRow{
			ID:           g.ID,
			FirstName:    g.FirstName,
			LastName:     g.LastName,
			Email:        g.Email,
			Phone:        g.Phone,
			BirthDate:    g.BirthDate,
			Nationality:  g.Nationality,
			DocumentType: g.DocumentType,
			DocumentNo:   g.DocumentNo,
			Registered:   g.Registered,
			RegisterCode: g.RegisterCode,
		}
	}
	return rows
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationRow(scanner rowScanner) (queries.ManualReservationRow, error) {
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
		return queries.ManualReservationRow{}, err
	}
	if len(guestsRaw) > 0 {
		if err := json.Unmarshal(guestsRaw, &row.Guests); err != nil {
			return queries.ManualReservationRow{}, err
		}
	}
	return row, nil
}
