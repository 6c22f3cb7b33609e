package bootstrap

import (
	"go.uber.org/fx"

	"wanderbook/internal/pkg/config"
	"wanderbook/internal/pkg/jwt"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, cfg.JWT.RefreshDuration)
}
