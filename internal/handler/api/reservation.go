package api

import (
	"errors"
	"net/http"

	reqdto "hostboard/internal/handler/dto/request"
	resdto "hostboard/internal/handler/dto/response"
	"hostboard/internal/handler/httperr"
	"hostboard/internal/usecase/commands"
	"hostboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationQueries  queries.ReservationQueries
	reservationCommands commands.ReservationCommands
}

func NewReservationHandler(
	reservationQueries queries.ReservationQueries,
	reservationCommands commands.ReservationCommands,
) *ReservationHandler {
	return &ReservationHandler{
		reservationQueries:  reservationQueries,
		reservationCommands: reservationCommands,
	}
}

func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	views, err := h.reservationQueries.GetUserReservations(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.reservationCommands.CreateReservation(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	var req reqdto.UpdateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.reservationCommands.UpdateReservation(c.Request.Context(), c.Param("id"), req.ToParams())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	if err := h.reservationCommands.CancelReservation(c.Request.Context(), c.Param("id")); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) CompleteReservation(c *gin.Context) {
	if err := h.reservationCommands.CompleteReservation(c.Request.Context(), c.Param("id")); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	if err := h.reservationCommands.DeleteReservation(c.Request.Context(), c.Param("id")); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeCommandError keeps "not available" distinct from generic write
// failures so the dashboard can tell the user why the save was refused.
func (h *ReservationHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrNotAvailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Property is not available for the requested dates",
		})
	case errors.Is(err, commands.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, commands.ErrSyncedReadOnly):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Synced reservations cannot be modified",
		})
	case errors.Is(err, commands.ErrInvalidReservationID):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
	case errors.Is(err, commands.ErrInvalidStayPeriod):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Check-out must be after check-in",
		})
	case errors.Is(err, commands.ErrInvalidStatusTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Status transition not allowed",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Reservation validation failed",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
