package api

import (
	"net/http"
	"time"

	resdto "hostboard/internal/handler/dto/response"
	"hostboard/internal/handler/httperr"
	"hostboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type PropertyHandler struct {
	reservationQueries  queries.ReservationQueries
	availabilityQueries queries.AvailabilityQueries
	mediaQueries        queries.MediaQueries
	incidentQueries     queries.IncidentQueries
}

func NewPropertyHandler(
	reservationQueries queries.ReservationQueries,
	availabilityQueries queries.AvailabilityQueries,
	mediaQueries queries.MediaQueries,
	incidentQueries queries.IncidentQueries,
) *PropertyHandler {
	return &PropertyHandler{
		reservationQueries:  reservationQueries,
		availabilityQueries: availabilityQueries,
		mediaQueries:        mediaQueries,
		incidentQueries:     incidentQueries,
	}
}

func (h *PropertyHandler) GetPropertyReservations(c *gin.Context) {
	propertyID, ok := h.propertyID(c)
	if !ok {
		return
	}

	views, err := h.reservationQueries.GetPropertyReservations(c.Request.Context(), propertyID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *PropertyHandler) CheckAvailability(c *gin.Context) {
	propertyID, ok := h.propertyID(c)
	if !ok {
		return
	}

	checkIn, err := time.Parse(dateLayout, c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "check_in must be a date in YYYY-MM-DD format",
		})
		return
	}
	checkOut, err := time.Parse(dateLayout, c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "check_out must be a date in YYYY-MM-DD format",
		})
		return
	}
	if !checkOut.After(checkIn) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "check_out must be after check_in",
		})
		return
	}

	var excludeID *uuid.UUID
	if exclude := c.Query("exclude"); exclude != "" {
		id, parseErr := uuid.Parse(exclude)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "exclude must be a reservation ID",
			})
			return
		}
		excludeID = &id
	}

	available, err := h.availabilityQueries.IsAvailable(c.Request.Context(), propertyID, checkIn, checkOut, excludeID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		PropertyID: propertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Available:  available,
	})
}

func (h *PropertyHandler) GetPropertyMedia(c *gin.Context) {
	propertyID, ok := h.propertyID(c)
	if !ok {
		return
	}

	views, err := h.mediaQueries.GetPropertyMedia(c.Request.Context(), propertyID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMediaViews(views))
}

func (h *PropertyHandler) GetPropertyIncidents(c *gin.Context) {
	propertyID, ok := h.propertyID(c)
	if !ok {
		return
	}

	views, err := h.incidentQueries.GetPropertyIncidents(c.Request.Context(), propertyID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromIncidentViews(views))
}

func (h *PropertyHandler) propertyID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
