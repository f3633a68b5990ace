package request

import (
	"strings"

	"hostboard/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateIncidentRequest struct {
	PropertyID  uuid.UUID `json:"property_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description,omitempty"`
	Severity    string    `json:"severity" binding:"required,oneof=low medium high"`
}

func (r CreateIncidentRequest) ToParams() commands.CreateIncidentParams {
	return commands.CreateIncidentParams{
		PropertyID:  r.PropertyID,
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		Severity:    r.Severity,
	}
}
