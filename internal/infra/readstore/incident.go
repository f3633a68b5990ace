package readstore

import (
	"context"

	"hostboard/internal/infra"
	"hostboard/internal/pkg/pgconv"
	"hostboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const incidentColumns = `id, property_id, title, description, severity, status, created_at, updated_at`

type IncidentReadStore struct {
	db *pgxpool.Pool
}

func NewIncidentReadStore(db *pgxpool.Pool) *IncidentReadStore {
	return &IncidentReadStore{db: db}
}

func (r *IncidentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.IncidentView, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`

	var view queries.IncidentView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.PropertyID,
		&view.Title,
		&view.Description,
		&view.Severity,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("incident not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find incident by ID", err)
	}
	return &view, nil
}

func (r *IncidentReadStore) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]queries.IncidentView, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE property_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list property incidents", err)
	}
	defer rows.Close()

	var result []queries.IncidentView
	for rows.Next() {
		var view queries.IncidentView
		if scanErr := rows.Scan(
			&view.ID,
			&view.PropertyID,
			&view.Title,
			&view.Description,
			&view.Severity,
			&view.Status,
			&view.CreatedAt,
			&view.UpdatedAt,
		); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to list property incidents", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list property incidents", err)
	}
	return result, nil
}
