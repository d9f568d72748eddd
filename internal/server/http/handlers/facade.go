package handlers

import (
	"context"

	"github.com/finbase/pointledger/internal/domain/model"
)

// LedgerFacade aggregates the point operations exposed via HTTP.
type LedgerFacade interface {
	Charge(ctx context.Context, userID, amount int64) (*model.LedgerResult, error)
	Use(ctx context.Context, userID, amount int64) (*model.LedgerResult, error)
	Balance(ctx context.Context, userID int64) (*model.Balance, error)
	History(ctx context.Context, userID int64) ([]model.HistoryEntry, error)
}
