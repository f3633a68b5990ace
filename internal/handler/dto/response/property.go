package response

import (
	"time"

	"hostboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MediaResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"propertyId"`
	URL        string    `json:"url"`
	Kind       string    `json:"kind"`
	Title      string    `json:"title,omitempty"`
	SortOrder  int32     `json:"sortOrder"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromMediaViews(views []queries.MediaView) []*MediaResponse {
	resp := make([]*MediaResponse, len(views))
	for i := range views {
		var m MediaResponse
		_ = copier.Copy(&m, &views[i])
		resp[i] = &m
	}
	return resp
}

type IncidentResponse struct {
	ID          uuid.UUID `json:"id"`
	PropertyID  uuid.UUID `json:"propertyId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Severity    string    `json:"severity"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromIncidentView(view *queries.IncidentView) *IncidentResponse {
	var resp IncidentResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromIncidentViews(views []queries.IncidentView) []*IncidentResponse {
	resp := make([]*IncidentResponse, len(views))
	for i := range views {
		resp[i] = FromIncidentView(&views[i])
	}
	return resp
}
