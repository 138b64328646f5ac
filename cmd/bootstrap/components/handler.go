package components

import (
	"lodgecancel/internal/handler"
	"lodgecancel/internal/handler/api"
	"lodgecancel/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCancellationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
