package lock

import (
	"go.uber.org/fx"

	"github.com/finbase/pointledger/internal/config"
)

// Module wires the per-user lock registry for fx graphs.
var Module = fx.Provide(newRegistry)

func newRegistry(cfg *config.Config) *Registry {
	return NewRegistry(cfg.LockTimeout)
}
