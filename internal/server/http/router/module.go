package router

import (
	"go.uber.org/fx"

	"github.com/finbase/pointledger/internal/domain/repository"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(f repository.Factory) HealthChecker { return f }),
	fx.Provide(Setup),
)
