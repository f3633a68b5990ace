package components

import (
	"hostboard/internal/pkg/clock"
	"hostboard/internal/usecase/commands"
	"hostboard/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
		queries.NewMediaQueries,
		queries.NewIncidentQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewIncidentCommands,
	),
)
