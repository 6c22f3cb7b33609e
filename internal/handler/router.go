package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	"wanderbook/internal/domain/user"
	"wanderbook/internal/handler/api"
	"wanderbook/internal/handler/middleware"
	"wanderbook/internal/pkg/config"
)

type Handlers struct {
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Review   *api.ReviewHandler
	Resource *api.ResourceHandler
}

type route struct {
	method  string
	path    string
	handler gin.HandlerFunc
	// extra middleware applied before the handler, after group middleware
	wrappers []gin.HandlerFunc
}

// NewRouter assembles the gin engine. Public routes (auth, resource catalog
// reads) skip authentication; everything else requires a valid token, and the
// status route additionally requires the admin role.
func NewRouter(cfg config.Config, h Handlers, validator middleware.TokenValidator) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.CustomRecovery(),
		middleware.RequestLogger(),
		middleware.NewCORSMiddleware(cfg.CORS),
		middleware.ErrorHandler(),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))

	authRequired := middleware.AuthMiddleware(validator)
	adminOnly := middleware.RequireRole(user.RoleAdmin)

	public := []route{
		{http.MethodPost, "/api/auth/login", h.Auth.Login, nil},
		{http.MethodPost, "/api/auth/refresh", h.Auth.Refresh, nil},
		{http.MethodPost, "/api/auth/logout", h.Auth.Logout, nil},
		{http.MethodGet, "/api/resources/:id", h.Resource.Get, nil},
		{http.MethodGet, "/api/resources/:id/reviews", h.Review.ListByResource, nil},
		{http.MethodGet, "/api/resources/:id/rating", h.Review.RatingDistribution, nil},
	}

	authed := []route{
		{http.MethodGet, "/api/auth/me", h.Auth.Me, nil},
		{http.MethodPost, "/api/bookings", h.Booking.Create, nil},
		{http.MethodGet, "/api/bookings", h.Booking.List, nil},
		{http.MethodGet, "/api/bookings/:id", h.Booking.Get, nil},
		{http.MethodPost, "/api/bookings/:id/cancel", h.Booking.Cancel, nil},
		{http.MethodPatch, "/api/bookings/:id/status", h.Booking.UpdateStatus, []gin.HandlerFunc{adminOnly}},
		{http.MethodPost, "/api/reviews", h.Review.Create, nil},
	}

	for _, r := range public {
		register(engine, r)
	}
	for _, r := range authed {
		r.wrappers = append([]gin.HandlerFunc{authRequired}, r.wrappers...)
		register(engine, r)
	}

	return engine
}

func register(engine *gin.Engine, r route) {
	handlers := append(append([]gin.HandlerFunc{}, r.wrappers...), r.handler)
	engine.Handle(r.method, r.path, handlers...)
}
