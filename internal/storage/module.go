package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/finbase/pointledger/internal/config"
	"github.com/finbase/pointledger/internal/domain/repository"
	"github.com/finbase/pointledger/internal/storage/memory"
	"github.com/finbase/pointledger/internal/storage/postgres"
)

// Module wires the storage backend and repository adapters. A configured
// database URI selects PostgreSQL, an empty one the in-memory backend.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.BalanceRepository { return f.Balances() },
		func(f repository.Factory) repository.HistoryRepository { return f.Histories() },
	),
	fx.Invoke(registerLifecycle),
)

type factoryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newFactory(p factoryParams) (repository.Factory, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("database URI not set, using in-memory storage")
		return memory.New(), nil
	}
	return postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, factory repository.Factory) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			factory.Close()
			return nil
		},
	})
}
