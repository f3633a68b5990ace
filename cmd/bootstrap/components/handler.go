package components

import (
	"hostboard/internal/handler"
	"hostboard/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewPropertyHandler,
		api.NewIncidentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
