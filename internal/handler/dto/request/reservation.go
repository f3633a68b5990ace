package request

import (
	"strings"
	"time"

	"hostboard/internal/usecase/commands"

	"github.com/google/uuid"
)

type GuestPayload struct {
	ID           string     `json:"id,omitempty"`
	FirstName    string     `json:"first_name" binding:"required"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Nationality  string     `json:"nationality,omitempty"`
	DocumentType string     `json:"document_type,omitempty"`
	DocumentNo   string     `json:"document_number,omitempty"`
}

type CreateReservationRequest struct {
	PropertyID  uuid.UUID      `json:"property_id" binding:"required"`
	UserID      uuid.UUID      `json:"user_id" binding:"required"`
	Guests      []GuestPayload `json:"guests" binding:"required,min=1,dive"`
	MainGuestID string         `json:"main_guest_id,omitempty"`
	CheckIn     time.Time      `json:"check_in" binding:"required"`
	CheckOut    time.Time      `json:"check_out" binding:"required"`
	Status      string         `json:"status" binding:"required,oneof=confirmed pending cancelled completed"`
	Source      string         `json:"source" binding:"required,oneof=direct airbnb booking other"`
	ExternalRef *string        `json:"external_ref,omitempty"`
	Notes       string         `json:"notes,omitempty"`
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		PropertyID:  r.PropertyID,
		UserID:      r.UserID,
		Guests:      guestParams(r.Guests),
		MainGuestID: r.MainGuestID,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		Status:      r.Status,
		Source:      r.Source,
		ExternalRef: r.ExternalRef,
		Notes:       strings.TrimSpace(r.Notes),
	}
}

type UpdateReservationRequest struct {
	CheckIn     *time.Time     `json:"check_in,omitempty"`
	CheckOut    *time.Time     `json:"check_out,omitempty"`
	Guests      []GuestPayload `json:"guests,omitempty"`
	MainGuestID *string        `json:"main_guest_id,omitempty"`
	Status      *string        `json:"status,omitempty" binding:"omitempty,oneof=confirmed pending cancelled completed"`
	Notes       *string        `json:"notes,omitempty"`
}

func (r UpdateReservationRequest) ToParams() commands.UpdateReservationParams {
	params := commands.UpdateReservationParams{
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		MainGuestID: r.MainGuestID,
		Status:      r.Status,
		Notes:       r.Notes,
	}
	if r.Guests != nil {
		params.Guests = guestParams(r.Guests)
	}
	return params
}

func guestParams(payloads []GuestPayload) []commands.GuestParams {
	params := make([]commands.GuestParams, len(payloads))
	for i, g := range payloads {
		params[i] = commands.GuestParams{
			ID:           g.ID,
			FirstName:    strings.TrimSpace(g.FirstName),
			LastName:     strings.TrimSpace(g.LastName),
			Email:        g.Email,
			Phone:        g.Phone,
			BirthDate:    g.BirthDate,
			Nationality:  g.Nationality,
			DocumentType: g.DocumentType,
			DocumentNo:   g.DocumentNo,
		}
	}
	return params
}
