package queries

import (
	"context"
	"time"

	"hostboard/internal/pkg/cache"
	"hostboard/internal/pkg/config"

	"github.com/google/uuid"
)

type MediaView struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	URL        string    `json:"url"`
	Kind       string    `json:"kind"`
	Title      string    `json:"title,omitempty"`
	SortOrder  int32     `json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
}

type MediaRepo interface {
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]MediaView, error)
}

type MediaQueries interface {
	GetPropertyMedia(ctx context.Context, propertyID uuid.UUID) ([]MediaView, error)
}

func PropertyMediaKey(propertyID uuid.UUID) string {
	return "media:property:" + propertyID.String()
}

type mediaQueriesImpl struct {
	repo     MediaRepo
	cache    *cache.Cache
	cacheCfg config.CacheConfig
}

func NewMediaQueries(repo MediaRepo, queryCache *cache.Cache, cacheCfg config.CacheConfig) MediaQueries {
	return &mediaQueriesImpl{
		repo:     repo,
		cache:    queryCache,
		cacheCfg: cacheCfg,
	}
}

// GetPropertyMedia serves the media gallery list. Galleries change rarely, so
// the entry rides the long MediaListTTL.
func (q *mediaQueriesImpl) GetPropertyMedia(ctx context.Context, propertyID uuid.UUID) ([]MediaView, error) {
	key := PropertyMediaKey(propertyID)
	if cached, ok := cache.ValueAs[[]MediaView](q.cache, key); ok {
		return cached, nil
	}

	media, err := q.repo.FindByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	q.cache.Set(key, media, q.cacheCfg.MediaListTTL)

	return media, nil
}
