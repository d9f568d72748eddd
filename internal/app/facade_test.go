package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/finbase/pointledger/internal/domain/errors"
	"github.com/finbase/pointledger/internal/lock"
	"github.com/finbase/pointledger/internal/metrics"
	"github.com/finbase/pointledger/internal/storage/memory"
	"github.com/finbase/pointledger/internal/usecase"
)

func newTestFacade() *LedgerFacade {
	store := memory.New()
	ledger := usecase.NewLedgerUseCase(store.Balances(), store.Histories(), lock.NewRegistry(0))
	return NewLedgerFacade(ledger, metrics.New())
}

func TestLedgerFacadeChargeAndUse(t *testing.T) {
	facade := newTestFacade()
	ctx := context.Background()

	result, err := facade.Charge(ctx, 7, 1000)
	if err != nil {
		t.Fatalf("charge returned error: %v", err)
	}
	if result.Balance.Amount != 1000 {
		t.Fatalf("expected balance 1000, got %d", result.Balance.Amount)
	}

	result, err = facade.Use(ctx, 7, 400)
	if err != nil {
		t.Fatalf("use returned error: %v", err)
	}
	if result.Balance.Amount != 600 {
		t.Fatalf("expected balance 600, got %d", result.Balance.Amount)
	}

	balance, err := facade.Balance(ctx, 7)
	if err != nil {
		t.Fatalf("balance returned error: %v", err)
	}
	if balance.Amount != 600 {
		t.Fatalf("expected balance 600, got %d", balance.Amount)
	}

	entries, err := facade.History(ctx, 7)
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestLedgerFacadePropagatesRejections(t *testing.T) {
	facade := newTestFacade()
	ctx := context.Background()

	if _, err := facade.Charge(ctx, 7, -1); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := facade.Use(ctx, 7, 100); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := facade.Balance(ctx, 7); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOutcomeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "success", err: nil, want: metrics.OutcomeOK},
		{name: "invalid amount", err: domainErrors.ErrInvalidAmount, want: metrics.OutcomeRejected},
		{name: "overflow", err: domainErrors.ErrAmountOverflow, want: metrics.OutcomeRejected},
		{name: "insufficient", err: domainErrors.ErrInsufficientPoints, want: metrics.OutcomeRejected},
		{name: "unknown user", err: domainErrors.ErrNotFound, want: metrics.OutcomeRejected},
		{name: "lock timeout", err: domainErrors.ErrLockTimeout, want: metrics.OutcomeError},
		{name: "storage failure", err: errors.New("boom"), want: metrics.OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outcomeFor(tt.err); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
