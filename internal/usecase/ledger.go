package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	domainErrors "github.com/finbase/pointledger/internal/domain/errors"
	"github.com/finbase/pointledger/internal/domain/model"
	"github.com/finbase/pointledger/internal/domain/repository"
	"github.com/finbase/pointledger/internal/lock"
)

// LedgerUseCase orchestrates point charges, uses, and queries. Every mutation
// runs its read-validate-write sequence under the per-user lock, so committed
// operations for one user are totally ordered and updates are never lost.
type LedgerUseCase struct {
	balances  repository.BalanceRepository
	histories repository.HistoryRepository
	locks     *lock.Registry
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(b repository.BalanceRepository, h repository.HistoryRepository, locks *lock.Registry) *LedgerUseCase {
	return &LedgerUseCase{balances: b, histories: h, locks: locks}
}

// Charge credits amount to the user, creating the balance record on the first
// charge for a previously unseen user.
func (u *LedgerUseCase) Charge(ctx context.Context, userID, amount int64) (*model.LedgerResult, error) {
	if amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	var result *model.LedgerResult
	err := u.locks.WithLock(ctx, userID, func() error {
		var current int64
		balance, err := u.balances.Get(ctx, userID)
		switch {
		case err == nil:
			current = balance.Amount
		case errors.Is(err, domainErrors.ErrNotFound):
			// first charge materializes the user at zero
		default:
			return err
		}

		if current > math.MaxInt64-amount {
			return domainErrors.ErrAmountOverflow
		}

		return u.commit(ctx, userID, current+amount, amount, model.EntryCharge, &result)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Use debits amount from the user. Unknown users and debits that would drive
// the balance negative are rejected without any mutation.
func (u *LedgerUseCase) Use(ctx context.Context, userID, amount int64) (*model.LedgerResult, error) {
	if amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	var result *model.LedgerResult
	err := u.locks.WithLock(ctx, userID, func() error {
		balance, err := u.balances.Get(ctx, userID)
		if err != nil {
			return err
		}

		if balance.Amount-amount < 0 {
			return domainErrors.ErrInsufficientPoints
		}

		return u.commit(ctx, userID, balance.Amount-amount, amount, model.EntryUse, &result)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// commit writes the new balance and appends the matching history entry.
// Both writes happen while the caller still holds the user lock, forming one
// logical commit; a history failure after the balance write leaves the store
// inconsistent and surfaces as an internal error.
func (u *LedgerUseCase) commit(ctx context.Context, userID, newAmount, delta int64, entryType model.EntryType, out **model.LedgerResult) error {
	balance, err := u.balances.Set(ctx, userID, newAmount)
	if err != nil {
		return err
	}

	entry, err := u.histories.Append(ctx, userID, delta, entryType)
	if err != nil {
		return fmt.Errorf("history append after balance write: %w", err)
	}

	*out = &model.LedgerResult{Balance: *balance, Entry: *entry}
	return nil
}

// SelectBalance returns the current balance without taking the mutation lock.
// It may observe a balance concurrently being updated; it never observes a
// partially applied one.
func (u *LedgerUseCase) SelectBalance(ctx context.Context, userID int64) (*model.Balance, error) {
	return u.balances.Get(ctx, userID)
}

// History returns all committed entries for the user in commit order, an
// empty slice when none exist.
func (u *LedgerUseCase) History(ctx context.Context, userID int64) ([]model.HistoryEntry, error) {
	entries, err := u.histories.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	return entries, nil
}
