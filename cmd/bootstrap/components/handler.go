package components

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"wanderbook/internal/handler"
	"wanderbook/internal/handler/api"
	"wanderbook/internal/handler/middleware"
	"wanderbook/internal/pkg/config"
	"wanderbook/internal/pkg/jwt"
	"wanderbook/internal/usecase"
	"wanderbook/internal/usecase/commands"
	"wanderbook/internal/usecase/queries"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		NewBookingHandler,
		NewReviewHandler,
		NewResourceHandler,
		fx.Annotate(NewTokenValidator, fx.As(new(middleware.TokenValidator))),
		NewEngine,
	),
)

func NewAuthHandler(authUC *usecase.AuthUsecase, users *queries.UserQueryService, jwtService *jwt.Service, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(authUC, users, jwtService, cfg.Cookie)
}

func NewBookingHandler(cmd *commands.BookingCommandService, qry *queries.BookingQueryService) *api.BookingHandler {
	return api.NewBookingHandler(cmd, qry)
}

func NewReviewHandler(cmd *commands.ReviewCommandService, qry *queries.ReviewQueryService) *api.ReviewHandler {
	return api.NewReviewHandler(cmd, qry)
}

func NewResourceHandler(qry *queries.ResourceQueryService) *api.ResourceHandler {
	return api.NewResourceHandler(qry)
}

func NewTokenValidator(jwtService *jwt.Service) *jwt.Service {
	return jwtService
}

func NewEngine(
	cfg config.Config,
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	review *api.ReviewHandler,
	resource *api.ResourceHandler,
	validator middleware.TokenValidator,
) *gin.Engine {
	return handler.NewRouter(cfg, handler.Handlers{
		Auth:     auth,
		Booking:  booking,
		Review:   review,
		Resource: resource,
	}, validator)
}
