package di

import (
	"go.uber.org/fx"

	"github.com/finbase/pointledger/internal/app"
	"github.com/finbase/pointledger/internal/config"
	"github.com/finbase/pointledger/internal/lock"
	"github.com/finbase/pointledger/internal/logger"
	"github.com/finbase/pointledger/internal/metrics"
	"github.com/finbase/pointledger/internal/server/http/router"
	"github.com/finbase/pointledger/internal/storage"
	"github.com/finbase/pointledger/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		lock.Module,
		storage.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
