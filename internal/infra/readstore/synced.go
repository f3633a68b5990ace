package readstore

import (
	"context"

	"hostboard/internal/infra"
	"hostboard/internal/pkg/pgconv"
	"hostboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const syncedBookingColumns = `
	external_id, property_id, guest_name, guest_email, guest_phone,
	check_in, check_out, status, platform, sync_source,
	created_at, updated_at
`

// SyncedBookingReadStore reads the bookings materialized from external
// calendar feeds. The table is written only by the out-of-process sync job;
// this subsystem never mutates it.
type SyncedBookingReadStore struct {
	db *pgxpool.Pool
}

func NewSyncedBookingReadStore(db *pgxpool.Pool) *SyncedBookingReadStore {
	return &SyncedBookingReadStore{db: db}
}

func (r *SyncedBookingReadStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]queries.SyncedBookingRow, error) {
	query := `SELECT ` + syncedBookingColumns + `
		FROM synced_bookings
		WHERE user_id = $1
		ORDER BY check_in DESC`

	return r.scanMany(ctx, query, "failed to list synced bookings by user ID", userID)
}

func (r *SyncedBookingReadStore) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]queries.SyncedBookingRow, error) {
	query := `SELECT ` + syncedBookingColumns + `
		FROM synced_bookings
		WHERE property_id = $1
		ORDER BY check_in DESC`

	return r.scanMany(ctx, query, "failed to list synced bookings by property ID", propertyID)
}

func (r *SyncedBookingReadStore) scanMany(ctx context.Context, query, errMsg string, args ...any) ([]queries.SyncedBookingRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(errMsg, err)
	}
	defer rows.Close()

	var result []queries.SyncedBookingRow
	for rows.Next() {
		var (
			row        queries.SyncedBookingRow
			guestName  pgtype.Text
			guestEmail pgtype.Text
			guestPhone pgtype.Text
		)
		if scanErr := rows.Scan(
			&row.ExternalID,
			&row.PropertyID,
			&guestName,
			&guestEmail,
			&guestPhone,
			&row.CheckIn,
			&row.CheckOut,
			&row.RawStatus,
			&row.Platform,
			&row.SyncSource,
			&row.CreatedAt,
			&row.UpdatedAt,
		); scanErr != nil {
			return nil, infra.WrapRepoErr(errMsg, scanErr)
		}
		row.GuestName = pgconv.StringPtrFromPgtype(guestName)
		row.GuestEmail = pgconv.StringPtrFromPgtype(guestEmail)
		row.GuestPhone = pgconv.StringPtrFromPgtype(guestPhone)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(errMsg, err)
	}
	return result, nil
}
