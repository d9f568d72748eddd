package test

import (
	"context"
	"time"

	"github.com/finbase/pointledger/internal/domain/model"
)

// LedgerFacadeStub provides controllable behaviour for ledger endpoints.
type LedgerFacadeStub struct {
	ChargeFn  func(context.Context, int64, int64) (*model.LedgerResult, error)
	UseFn     func(context.Context, int64, int64) (*model.LedgerResult, error)
	BalanceFn func(context.Context, int64) (*model.Balance, error)
	HistoryFn func(context.Context, int64) ([]model.HistoryEntry, error)
}

func defaultResult(userID, amount int64, entryType model.EntryType) *model.LedgerResult {
	return &model.LedgerResult{
		Balance: model.Balance{UserID: userID, Amount: amount, UpdatedAt: time.Unix(0, 0)},
		Entry:   model.HistoryEntry{ID: 1, UserID: userID, Amount: amount, Type: entryType, RecordedAt: time.Unix(0, 0)},
	}
}

// Charge delegates to the provided function or returns a default result.
func (s LedgerFacadeStub) Charge(ctx context.Context, userID, amount int64) (*model.LedgerResult, error) {
	if s.ChargeFn != nil {
		return s.ChargeFn(ctx, userID, amount)
	}
	return defaultResult(userID, amount, model.EntryCharge), nil
}

// Use delegates to the provided function or returns a default result.
func (s LedgerFacadeStub) Use(ctx context.Context, userID, amount int64) (*model.LedgerResult, error) {
	if s.UseFn != nil {
		return s.UseFn(ctx, userID, amount)
	}
	return defaultResult(userID, amount, model.EntryUse), nil
}

// Balance returns the stored summary or default data.
func (s LedgerFacadeStub) Balance(ctx context.Context, userID int64) (*model.Balance, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return &model.Balance{UserID: userID, Amount: 10, UpdatedAt: time.Unix(0, 0)}, nil
}

// History returns preconfigured entries.
func (s LedgerFacadeStub) History(ctx context.Context, userID int64) ([]model.HistoryEntry, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, userID)
	}
	return []model.HistoryEntry{{ID: 1, UserID: userID, Amount: 1, Type: model.EntryCharge, RecordedAt: time.Unix(0, 0)}}, nil
}
