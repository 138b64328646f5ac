package components

import (
	"lodgecancel/internal/infra/gateway"
	"lodgecancel/internal/infra/intentstore"
	"lodgecancel/internal/pkg/config"
	"lodgecancel/internal/usecase/commands"
	"lodgecancel/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		func(cfg config.Config) config.BackendConfig { return cfg.Backend },
		// IntentStore backs both the write side of the orchestrator and the
		// read side of the status queries.
		fx.Annotate(
			intentstore.NewStore,
			fx.As(new(commands.IntentWriteStore)),
			fx.As(new(queries.IntentReadStore)),
		),
		// Gateway
		fx.Annotate(
			gateway.NewHTTPGateway,
			fx.As(new(commands.CancellationGateway)),
			fx.As(new(queries.PolicyFetcher)),
		),
	),
)
