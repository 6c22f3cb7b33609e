package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	dombooking "wanderbook/internal/domain/booking"
	"wanderbook/internal/infra/readstore"
	"wanderbook/internal/infra/uow"
	"wanderbook/internal/pkg/clock"
	"wanderbook/internal/pkg/config"
	"wanderbook/internal/usecase"
	"wanderbook/internal/usecase/commands"
	"wanderbook/internal/usecase/queries"
	"wanderbook/internal/usecase/shared"
)

// UsecaseModule wires the command and query services. Read stores run on the
// shared pool; writes always go through the unit of work.
var UsecaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewPriceCalculator,

		fx.Annotate(uow.NewPostgresUoW, fx.As(new(shared.UnitOfWork))),

		fx.Annotate(NewBookingReadStore, fx.As(new(queries.BookingReadStore))),
		fx.Annotate(NewReviewReadStore, fx.As(new(queries.ReviewReadStore))),
		fx.Annotate(NewResourceReadStore, fx.As(new(queries.ResourceReadStore))),
		fx.Annotate(NewUserReadStore, fx.As(new(queries.UserReadStore))),

		commands.NewBookingCommandService,
		commands.NewReviewCommandService,
		queries.NewBookingQueryService,
		queries.NewReviewQueryService,
		queries.NewResourceQueryService,
		queries.NewUserQueryService,
		usecase.NewAuthUsecase,
	),
)

func NewPriceCalculator(cfg config.Config) dombooking.PriceCalculator {
	return dombooking.NewDailyRateCalculator(cfg.Pricing.DefaultDailyRate, cfg.Pricing.DefaultCurrency)
}

func NewBookingReadStore(pool *pgxpool.Pool) *readstore.BookingReadStore {
	return readstore.NewBookingReadStore(pool)
}

func NewReviewReadStore(pool *pgxpool.Pool) *readstore.ReviewReadStore {
	return readstore.NewReviewReadStore(pool)
}

func NewResourceReadStore(pool *pgxpool.Pool) *readstore.ResourceReadStore {
	return readstore.NewResourceReadStore(pool)
}

func NewUserReadStore(pool *pgxpool.Pool) *readstore.UserReadStore {
	return readstore.NewUserReadStore(pool)
}
