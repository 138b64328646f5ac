package bootstrap

import (
	"context"
	"database/sql"

	"lodgecancel/internal/infra/db"
	"lodgecancel/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*sql.DB, error) {
	handle, cleanup, err := db.Connect(cfg.Store)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return handle, nil
}
