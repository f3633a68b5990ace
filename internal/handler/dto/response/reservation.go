package response

import (
	"time"

	"hostboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID          string          `json:"id"`
	PropertyID  uuid.UUID       `json:"propertyId"`
	Guests      []GuestResponse `json:"guests"`
	MainGuestID string          `json:"mainGuestId"`
	CheckIn     time.Time       `json:"checkIn"`
	CheckOut    time.Time       `json:"checkOut"`
	Status      string          `json:"status"`
	TotalGuests int             `json:"totalGuests"`
	Source      string          `json:"source"`
	ExternalRef *string         `json:"externalRef,omitempty"`
	IsSynced    bool            `json:"isSynced"`
	SyncSource  string          `json:"syncSource,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type GuestResponse struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	BirthDate    *time.Time `json:"birthDate,omitempty"`
	Nationality  string     `json:"nationality,omitempty"`
	DocumentType string     `json:"documentType,omitempty"`
	DocumentNo   string     `json:"documentNumber,omitempty"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromReservationViews(views []queries.ReservationView) []*ReservationResponse {
	resp := make([]*ReservationResponse, len(views))
	for i := range views {
		resp[i] = FromReservationView(&views[i])
	}
	return resp
}

type AvailabilityResponse struct {
	PropertyID uuid.UUID `json:"propertyId"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Available  bool      `json:"available"`
}
