package bootstrap

import (
	"time"

	"lodgecancel/internal/pkg/config"
	"lodgecancel/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	// Tokens are issued by the marketplace auth service; this service only
	// validates them, so the duration here matters for tooling only.
	return jwt.NewService(cfg.JWT.Secret, 24*time.Hour)
}
