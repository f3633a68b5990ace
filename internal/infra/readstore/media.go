package readstore

import (
	"context"

	"hostboard/internal/infra"
	"hostboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MediaReadStore lists a property's media records. Upload and storage of the
// underlying files live outside this service.
type MediaReadStore struct {
	db *pgxpool.Pool
}

func NewMediaReadStore(db *pgxpool.Pool) *MediaReadStore {
	return &MediaReadStore{db: db}
}

func (r *MediaReadStore) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]queries.MediaView, error) {
	query := `SELECT id, property_id, url, kind, title, sort_order, created_at
		FROM property_media
		WHERE property_id = $1
		ORDER BY sort_order, created_at`

	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list property media", err)
	}
	defer rows.Close()

	var result []queries.MediaView
	for rows.Next() {
		var view queries.MediaView
		if scanErr := rows.Scan(
			&view.ID,
			&view.PropertyID,
			&view.URL,
			&view.Kind,
			&view.Title,
			&view.SortOrder,
			&view.CreatedAt,
		); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to list property media", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list property media", err)
	}
	return result, nil
}
