package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wanderbook/internal/domain/auth"
	"wanderbook/internal/handler/dto"
	"wanderbook/internal/handler/middleware"
	"wanderbook/internal/pkg/config"
	"wanderbook/internal/pkg/cookie"
	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/pkg/jwt"
	"wanderbook/internal/usecase"
	"wanderbook/internal/usecase/queries"
	"wanderbook/internal/usecase/shared"
)

type AuthService interface {
	Login(ctx context.Context, creds auth.Credentials) (*usecase.TokenPair, *usecase.AuthenticatedUser, error)
	Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error)
}

type UserQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*queries.UserView, error)
}

type AuthHandler struct {
	auth      AuthService
	users     UserQueries
	jwt       *jwt.Service
	cookieCfg config.CookieConfig
}

func NewAuthHandler(authService AuthService, users UserQueries, jwtService *jwt.Service, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{auth: authService, users: users, jwt: jwtService, cookieCfg: cookieCfg}
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200 {object} dto.UserResponse
// @Failure      401 {object} httperr.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request body")
		return
	}

	creds, err := auth.NewCredentials(req.Email, req.Password)
	if err != nil {
		// Malformed credentials fail the same way wrong ones do.
		respondError(c, errs.Mark(err, shared.ErrInvalidCredentials))
		return
	}

	pair, authedUser, err := h.auth.Login(c.Request.Context(), creds)
	if err != nil {
		respondError(c, err)
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg,
		pair.AccessToken, pair.RefreshToken,
		h.jwt.TokenDuration(), h.jwt.RefreshDuration(),
	)

	c.JSON(http.StatusOK, dto.UserResponse{
		ID:    authedUser.ID,
		Email: authedUser.Email,
		Role:  authedUser.Role.String(),
	})
}

// Refresh godoc
// @Summary      Refresh the session tokens
// @Tags         auth
// @Success      204
// @Failure      401 {object} httperr.Response
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		respondUnauthenticated(c, errs.New("missing refresh token"))
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg,
		pair.AccessToken, pair.RefreshToken,
		h.jwt.TokenDuration(), h.jwt.RefreshDuration(),
	)
	c.Status(http.StatusNoContent)
}

// Logout godoc
// @Summary      Log out and clear session cookies
// @Tags         auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary      Current authenticated user
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.UserResponse
// @Failure      401 {object} httperr.Response
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		respondUnauthenticated(c, errs.New("actor missing from context"))
		return
	}

	view, err := h.users.Get(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := dto.NewUserResponse(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
