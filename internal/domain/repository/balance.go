package repository

import (
	"context"

	"github.com/finbase/pointledger/internal/domain/model"
)

// BalanceRepository stores the current point balance per user.
//
// It is a plain store: it performs no serialization of concurrent mutations.
// Callers mutating a balance must hold the lock for that user; the repository
// only guarantees its own internal data structures stay consistent.
type BalanceRepository interface {
	// Get returns the stored balance or domain ErrNotFound for a user that
	// has never transacted.
	Get(ctx context.Context, userID int64) (*model.Balance, error)

	// Set unconditionally overwrites the balance for userID, creating the
	// record if absent, and returns the stored record with a fresh timestamp.
	Set(ctx context.Context, userID, amount int64) (*model.Balance, error)
}
