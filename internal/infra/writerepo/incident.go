package writerepo

import (
	"context"

	"hostboard/internal/domain/incident"
	"hostboard/internal/infra"
	"hostboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) *IncidentRepository {
	return &IncidentRepository{db: db}
}

func (r *IncidentRepository) Create(ctx context.Context, inc *incident.Incident) (queries.IncidentView, error) {
	query := `INSERT INTO incidents (
			id, property_id, title, description, severity, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING id, property_id, title, description, severity, status, created_at, updated_at`

	var view queries.IncidentView
	err := r.db.QueryRow(ctx, query,
		inc.ID(),
		inc.PropertyID(),
		inc.Title(),
		inc.Description(),
		string(inc.Severity()),
		string(inc.Status()),
	).Scan(
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
		return queries.IncidentView{}, infra.WrapRepoErr("failed to create incident", err)
	}
	return view, nil
}

func (r *IncidentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status incident.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE incidents SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update incident status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("incident not found", nil, infra.KindNotFound)
	}
	return nil
}
