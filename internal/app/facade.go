package app

import (
	"context"
	"errors"

	domainErrors "github.com/finbase/pointledger/internal/domain/errors"
	"github.com/finbase/pointledger/internal/domain/model"
	"github.com/finbase/pointledger/internal/metrics"
	"github.com/finbase/pointledger/internal/usecase"
)

// LedgerFacade exposes ledger operations to the transport layer and
// counts their outcomes.
type LedgerFacade struct {
	ledger  *usecase.LedgerUseCase
	metrics *metrics.Metrics
}

func NewLedgerFacade(ledger *usecase.LedgerUseCase, m *metrics.Metrics) *LedgerFacade {
	return &LedgerFacade{ledger: ledger, metrics: m}
}

func (f *LedgerFacade) Charge(ctx context.Context, userID, amount int64) (*model.LedgerResult, error) {
	result, err := f.ledger.Charge(ctx, userID, amount)
	f.metrics.RecordOperation("charge", outcomeFor(err))
	return result, err
}

func (f *LedgerFacade) Use(ctx context.Context, userID, amount int64) (*model.LedgerResult, error) {
	result, err := f.ledger.Use(ctx, userID, amount)
	f.metrics.RecordOperation("use", outcomeFor(err))
	return result, err
}

func (f *LedgerFacade) Balance(ctx context.Context, userID int64) (*model.Balance, error) {
	return f.ledger.SelectBalance(ctx, userID)
}

func (f *LedgerFacade) History(ctx context.Context, userID int64) ([]model.HistoryEntry, error) {
	return f.ledger.History(ctx, userID)
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, domainErrors.ErrInvalidAmount),
		errors.Is(err, domainErrors.ErrAmountOverflow),
		errors.Is(err, domainErrors.ErrInsufficientPoints),
		errors.Is(err, domainErrors.ErrNotFound):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
