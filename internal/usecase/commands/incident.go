package commands

import (
	"context"

	"hostboard/internal/domain/incident"
	"hostboard/internal/infra"
	"hostboard/internal/pkg/cache"
	"hostboard/internal/pkg/errs"
	"hostboard/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrIncidentNotFound         = errs.New("incident not found")
	ErrIncidentValidation       = errs.New("incident validation error")
	ErrIncidentAlreadyResolved  = errs.New("incident already resolved")
	ErrIncidentOperationInvalid = errs.New("incident operation failed")
)

type CreateIncidentParams struct {
	PropertyID  uuid.UUID
	Title       string
	Description string
	Severity    string
}

type IncidentWriteRepo interface {
	Create(ctx context.Context, inc *incident.Incident) (queries.IncidentView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status incident.Status) error
}

type IncidentReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.IncidentView, error)
}

type IncidentCommands interface {
	CreateIncident(ctx context.Context, params CreateIncidentParams) (*queries.IncidentView, error)
	ResolveIncident(ctx context.Context, id uuid.UUID) error
}

type incidentCommandsImpl struct {
	writeRepo IncidentWriteRepo
	reads     IncidentReads
	cache     *cache.Cache
}

func NewIncidentCommands(writeRepo IncidentWriteRepo, reads IncidentReads, queryCache *cache.Cache) IncidentCommands {
	return &incidentCommandsImpl{
		writeRepo: writeRepo,
		reads:     reads,
		cache:     queryCache,
	}
}

func (c *incidentCommandsImpl) CreateIncident(ctx context.Context, params CreateIncidentParams) (*queries.IncidentView, error) {
	entity, err := incident.NewIncident(params.PropertyID, params.Title, params.Description, incident.Severity(params.Severity))
	if err != nil {
		return nil, errs.Mark(err, ErrIncidentValidation)
	}

	view, err := c.writeRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrIncidentOperationInvalid)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	c.cache.Invalidate(queries.PropertyIncidentsKey(params.PropertyID))

	return &view, nil
}

func (c *incidentCommandsImpl) ResolveIncident(ctx context.Context, id uuid.UUID) error {
	current, err := c.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrIncidentNotFound
		}
		return errs.Mark(err, ErrIncidentOperationInvalid)
	}
	if current.Status == string(incident.StatusResolved) {
		return ErrIncidentAlreadyResolved
	}

	if err := c.writeRepo.UpdateStatus(ctx, id, incident.StatusResolved); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrIncidentNotFound
		}
		return errs.Mark(err, ErrIncidentOperationInvalid)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	c.cache.Invalidate(queries.PropertyIncidentsKey(current.PropertyID))

	return nil
}
