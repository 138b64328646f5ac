package bootstrap

import (
	"net/http"

	"lodgecancel/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewBackendClient,
	),
)

// NewBackendClient is the shared transport client for the booking backend.
// Its timeout bounds every individual strategy call; a timeout classifies as
// transient and the cascade moves on.
func NewBackendClient(cfg config.Config) *http.Client {
	return &http.Client{
		Timeout: cfg.Backend.RequestTimeout,
	}
}
