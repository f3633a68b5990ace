package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostboard/internal/handler/api"
	"hostboard/internal/handler/middleware"
	"hostboard/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	reservationHandler *api.ReservationHandler,
	propertyHandler *api.PropertyHandler,
	incidentHandler *api.IncidentHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, propertyHandler, incidentHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	reservationHandler *api.ReservationHandler,
	propertyHandler *api.PropertyHandler,
	incidentHandler *api.IncidentHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: reservationHandler.GetUserReservations},
			})
		}

		properties := apiGroup.Group("/properties")
		{
			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: propertyHandler.GetPropertyReservations},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: propertyHandler.CheckAvailability},
				{Method: http.MethodGet, Path: "/:id/media", Handler: propertyHandler.GetPropertyMedia},
				{Method: http.MethodGet, Path: "/:id/incidents", Handler: propertyHandler.GetPropertyIncidents},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodPut, Path: "/:id", Handler: reservationHandler.UpdateReservation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: reservationHandler.CompleteReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.DeleteReservation},
			})
		}

		incidents := apiGroup.Group("/incidents")
		{
			addRoutes(incidents, []route{
				{Method: http.MethodPost, Path: "", Handler: incidentHandler.CreateIncident},
				{Method: http.MethodPost, Path: "/:id/resolve", Handler: incidentHandler.ResolveIncident},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
