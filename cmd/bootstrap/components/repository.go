package components

import (
	"hostboard/internal/infra/readstore"
	"hostboard/internal/infra/writerepo"
	"hostboard/internal/usecase/commands"
	"hostboard/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	readstoreModule,
	writerepoModule,
)

var readstoreModule = fx.Module("repository/readstore",
	fx.Provide(
		// Reservation
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ManualReservationRepo)),
			fx.As(new(queries.ConflictingReservationRepo)),
			fx.As(new(commands.ReservationReads)),
		),
		// Synced bookings
		fx.Annotate(
			readstore.NewSyncedBookingReadStore,
			fx.As(new(queries.SyncedBookingRepo)),
		),
		// Media
		fx.Annotate(
			readstore.NewMediaReadStore,
			fx.As(new(queries.MediaRepo)),
		),
		// Incident
		fx.Annotate(
			readstore.NewIncidentReadStore,
			fx.As(new(queries.IncidentRepo)),
			fx.As(new(commands.IncidentReads)),
		),
	),
)

var writerepoModule = fx.Module("repository/writerepo",
	fx.Provide(
		// Reservation
		fx.Annotate(
			writerepo.NewReservationRepository,
			fx.As(new(commands.ReservationWriteRepo)),
		),
		// Incident
		fx.Annotate(
			writerepo.NewIncidentRepository,
			fx.As(new(commands.IncidentWriteRepo)),
		),
	),
)
