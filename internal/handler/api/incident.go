package api

import (
	"errors"
	"net/http"

	reqdto "hostboard/internal/handler/dto/request"
	resdto "hostboard/internal/handler/dto/response"
	"hostboard/internal/handler/httperr"
	"hostboard/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IncidentHandler struct {
	incidentCommands commands.IncidentCommands
}

func NewIncidentHandler(incidentCommands commands.IncidentCommands) *IncidentHandler {
	return &IncidentHandler{incidentCommands: incidentCommands}
}

func (h *IncidentHandler) CreateIncident(c *gin.Context) {
	var req reqdto.CreateIncidentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.incidentCommands.CreateIncident(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrIncidentValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Incident validation failed",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromIncidentView(view))
}

func (h *IncidentHandler) ResolveIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid incident ID format",
		})
		return
	}

	if err := h.incidentCommands.ResolveIncident(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrIncidentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Incident not found",
			})
		case errors.Is(err, commands.ErrIncidentAlreadyResolved):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Incident is already resolved",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
