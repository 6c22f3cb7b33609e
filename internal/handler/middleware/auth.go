package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wanderbook/internal/domain/user"
	"wanderbook/internal/handler/httperr"
	"wanderbook/internal/pkg/cookie"
	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/pkg/jwt"
	"wanderbook/internal/usecase/shared"
)

const (
	ContextUserID   = "auth_user_id"
	ContextUserRole = "auth_user_role"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware authenticates from the access token cookie, falling back to
// a bearer Authorization header for non-browser clients.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)
		if token == "" {
			token = bearerToken(c)
		}
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.New("missing access token"), "Authentication required", nil)
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// RequireRole allows the request through only when the authenticated role is
// one of the given roles. It must run after AuthMiddleware.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr, ok := c.Get(ContextUserRole)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.New("role missing from context"), "Authentication required", nil)
			return
		}

		current := user.Role(roleStr.(string))
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}

		httperr.AbortWithError(c, http.StatusForbidden,
			errs.New("insufficient role"), "Operation not permitted", nil)
	}
}

// ActorFromContext rebuilds the usecase actor from the values AuthMiddleware
// stored. The bool is false when the request was not authenticated.
func ActorFromContext(c *gin.Context) (shared.Actor, bool) {
	idVal, ok := c.Get(ContextUserID)
	if !ok {
		return shared.Actor{}, false
	}
	roleVal, ok := c.Get(ContextUserRole)
	if !ok {
		return shared.Actor{}, false
	}

	id, ok := idVal.(uuid.UUID)
	if !ok {
		return shared.Actor{}, false
	}
	role, err := user.NewRole(roleVal.(string))
	if err != nil {
		return shared.Actor{}, false
	}

	return shared.Actor{ID: id, Role: role}, true
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if after, found := strings.CutPrefix(header, "Bearer "); found {
		return after
	}
	return ""
}
