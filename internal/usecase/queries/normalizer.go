package queries

import (
	"time"

	"github.com/google/uuid"
)

// Raw row shapes as the read stores deliver them. Manual rows keep the
// store's native status vocabulary; synced rows carry whatever the external
// feed exposed, so every guest field is optional.

type GuestRow struct {
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

type ManualReservationRow struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	UserID      uuid.UUID
	Guests      []GuestRow
	MainGuestID string
	CheckIn     time.Time
	CheckOut    time.Time
	RawStatus   string
	Source      string
	ExternalRef *string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type SyncedBookingRow struct {
	ExternalID string
	PropertyID uuid.UUID
	GuestName  *string
	GuestEmail *string
	GuestPhone *string
	CheckIn    time.Time
	CheckOut   time.Time
	RawStatus  string
	Platform   string
	SyncSource string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SyncedIDPrefix namespaces synced-booking IDs so they can never collide
// with manual reservation UUIDs in the merged view.
const SyncedIDPrefix = "synced-"

// NormalizeManual translates a manual reservation row into the unified view.
// It is total: source data is treated as validated by its origin and missing
// fields default rather than fail.
func NormalizeManual(row ManualReservationRow) ReservationView {
	guests := make([]GuestView, len(row.Guests))
	for i, g := range row.Guests {
		guests[i] = GuestView{
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

	return ReservationView{
		ID:          row.ID.String(),
		PropertyID:  row.PropertyID,
		Guests:      guests,
		MainGuestID: row.MainGuestID,
		CheckIn:     row.CheckIn,
		CheckOut:    row.CheckOut,
		Status:      manualStatus(row.RawStatus),
		TotalGuests: len(guests),
		Source:      normalizeSource(row.Source),
		ExternalRef: row.ExternalRef,
		IsSynced:    false,
		Notes:       row.Notes,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// NormalizeSynced translates a synced-booking row into the unified view. The
// feed exposes no guest roster, so the view carries exactly one synthetic
// guest and a fixed TotalGuests of 1 regardless of real occupancy.
func NormalizeSynced(row SyncedBookingRow) ReservationView {
	id := SyncedIDPrefix + row.ExternalID
	guestID := id + "-guest"

	guest := GuestView{
		ID:        guestID,
		FirstName: valueOrEmpty(row.GuestName),
		Email:     valueOrEmpty(row.GuestEmail),
		Phone:     valueOrEmpty(row.GuestPhone),
	}

	externalRef := row.ExternalID

	return ReservationView{
		ID:          id,
		PropertyID:  row.PropertyID,
		Guests:      []GuestView{guest},
		MainGuestID: guestID,
		CheckIn:     row.CheckIn,
		CheckOut:    row.CheckOut,
		Status:      syncedStatus(row.RawStatus),
		TotalGuests: 1,
		Source:      normalizeSource(row.Platform),
		ExternalRef: &externalRef,
		IsSynced:    true,
		SyncSource:  row.SyncSource,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func manualStatus(raw string) string {
	switch raw {
	case "active":
		return "confirmed"
	case "cancelled":
		return "cancelled"
	case "completed":
		return "completed"
	default:
		return "pending"
	}
}

func syncedStatus(raw string) string {
	switch raw {
	case "blocked", "reserved":
		return "confirmed"
	default:
		return "pending"
	}
}

func normalizeSource(raw string) string {
	switch raw {
	case "direct", "airbnb", "booking":
		return raw
	default:
		return "other"
	}
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
