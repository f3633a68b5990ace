package queries

import (
	"context"
	"time"

	"hostboard/internal/pkg/cache"
	"hostboard/internal/pkg/config"

	"github.com/google/uuid"
)

type IncidentView struct {
	ID          uuid.UUID `json:"id"`
	PropertyID  uuid.UUID `json:"property_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Severity    string    `json:"severity"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type IncidentRepo interface {
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]IncidentView, error)
}

type IncidentQueries interface {
	GetPropertyIncidents(ctx context.Context, propertyID uuid.UUID) ([]IncidentView, error)
}

func PropertyIncidentsKey(propertyID uuid.UUID) string {
	return "incidents:property:" + propertyID.String()
}

type incidentQueriesImpl struct {
	repo     IncidentRepo
	cache    *cache.Cache
	cacheCfg config.CacheConfig
}

func NewIncidentQueries(repo IncidentRepo, queryCache *cache.Cache, cacheCfg config.CacheConfig) IncidentQueries {
	return &incidentQueriesImpl{
		repo:     repo,
		cache:    queryCache,
		cacheCfg: cacheCfg,
	}
}

func (q *incidentQueriesImpl) GetPropertyIncidents(ctx context.Context, propertyID uuid.UUID) ([]IncidentView, error) {
	key := PropertyIncidentsKey(propertyID)
	if cached, ok := cache.ValueAs[[]IncidentView](q.cache, key); ok {
		return cached, nil
	}

	incidents, err := q.repo.FindByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	q.cache.Set(key, incidents, q.cacheCfg.DefaultTTL)

	return incidents, nil
}
