package queries

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"hostboard/internal/pkg/cache"
	"hostboard/internal/pkg/config"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID          string      `json:"id"`
	PropertyID  uuid.UUID   `json:"property_id"`
	Guests      []GuestView `json:"guests"`
	MainGuestID string      `json:"main_guest_id"`
	CheckIn     time.Time   `json:"check_in"`
	CheckOut    time.Time   `json:"check_out"`
	Status      string      `json:"status"`
	TotalGuests int         `json:"total_guests"`
	Source      string      `json:"source"`
	ExternalRef *string     `json:"external_ref,omitempty"`
	IsSynced    bool        `json:"is_synced"`
	SyncSource  string      `json:"sync_source,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type GuestView struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Nationality  string     `json:"nationality,omitempty"`
	DocumentType string     `json:"document_type,omitempty"`
	DocumentNo   string     `json:"document_number,omitempty"`
	Registered   bool       `json:"registered,omitempty"`
	RegisterCode string     `json:"register_code,omitempty"`
}

type ManualReservationRepo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]ManualReservationRow, error)
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]ManualReservationRow, error)
}

type SyncedBookingRepo interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]SyncedBookingRow, error)
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]SyncedBookingRow, error)
}

type ReservationQueries interface {
	GetUserReservations(ctx context.Context, userID uuid.UUID) ([]ReservationView, error)
	GetPropertyReservations(ctx context.Context, propertyID uuid.UUID) ([]ReservationView, error)
}

func UserReservationsKey(userID uuid.UUID) string {
	return "reservations:user:" + userID.String()
}

func PropertyReservationsKey(propertyID uuid.UUID) string {
	return "reservations:property:" + propertyID.String()
}

type reservationQueriesImpl struct {
	manualRepo ManualReservationRepo
	syncedRepo SyncedBookingRepo
	cache      *cache.Cache
	cacheCfg   config.CacheConfig
	logger     *slog.Logger
}

func NewReservationQueries(
	manualRepo ManualReservationRepo,
	syncedRepo SyncedBookingRepo,
	queryCache *cache.Cache,
	cacheCfg config.CacheConfig,
	logger *slog.Logger,
) ReservationQueries {
	return &reservationQueriesImpl{
		manualRepo: manualRepo,
		syncedRepo: syncedRepo,
		cache:      queryCache,
		cacheCfg:   cacheCfg,
		logger:     logger,
	}
}

func (q *reservationQueriesImpl) GetUserReservations(ctx context.Context, userID uuid.UUID) ([]ReservationView, error) {
	return q.aggregate(ctx, UserReservationsKey(userID),
		func() ([]ManualReservationRow, error) { return q.manualRepo.FindByUserID(ctx, userID) },
		func() ([]SyncedBookingRow, error) { return q.syncedRepo.ListByUserID(ctx, userID) },
	)
}

func (q *reservationQueriesImpl) GetPropertyReservations(ctx context.Context, propertyID uuid.UUID) ([]ReservationView, error) {
	return q.aggregate(ctx, PropertyReservationsKey(propertyID),
		func() ([]ManualReservationRow, error) { return q.manualRepo.FindByPropertyID(ctx, propertyID) },
		func() ([]SyncedBookingRow, error) { return q.syncedRepo.ListByPropertyID(ctx, propertyID) },
	)
}

type syncedResult struct {
	rows []SyncedBookingRow
	err  error
}

// aggregate is the cached merge of both sources. The manual read is
// authoritative and its failure fails the call; the synced read is best-effort
// enrichment and degrades to an empty set with a warning.
func (q *reservationQueriesImpl) aggregate(
	ctx context.Context,
	cacheKey string,
	fetchManual func() ([]ManualReservationRow, error),
	fetchSynced func() ([]SyncedBookingRow, error),
) ([]ReservationView, error) {
	if cached, ok := cache.ValueAs[[]ReservationView](q.cache, cacheKey); ok {
		return cached, nil
	}

	// Both reads go out before either is awaited.
	syncedCh := make(chan syncedResult, 1)
	go func() {
		rows, err := fetchSynced()
		syncedCh <- syncedResult{rows: rows, err: err}
	}()

	manualRows, err := fetchManual()
	synced := <-syncedCh
	if err != nil {
		return nil, err
	}
	if synced.err != nil {
		q.logger.Warn("synced bookings unavailable, serving manual results only",
			"cache_key", cacheKey, "error", synced.err)
		synced.rows = nil
	}

	views := make([]ReservationView, 0, len(manualRows)+len(synced.rows))
	for _, row := range manualRows {
		views = append(views, NormalizeManual(row))
	}
	for _, row := range synced.rows {
		views = append(views, NormalizeSynced(row))
	}

	sortByCheckInDesc(views)

	// A cancelled read must not populate the cache with a possibly
	// incomplete result.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	q.cache.Set(cacheKey, views, q.cacheCfg.ReservationListTTL)

	return views, nil
}

func sortByCheckInDesc(views []ReservationView) {
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].CheckIn.Equal(views[j].CheckIn) {
			return views[i].ID < views[j].ID
		}
		return views[i].CheckIn.After(views[j].CheckIn)
	})
}
