package test

import (
	"context"
	"time"

	domainErrors "github.com/finbase/pointledger/internal/domain/errors"
	"github.com/finbase/pointledger/internal/domain/model"
	"github.com/finbase/pointledger/internal/domain/repository"
)

// BalanceRepositoryStub allows tests to customize balance table behaviour.
type BalanceRepositoryStub struct {
	GetFn func(context.Context, int64) (*model.Balance, error)
	SetFn func(context.Context, int64, int64) (*model.Balance, error)
}

// Get delegates to the provided function or reports an unknown user.
func (s *BalanceRepositoryStub) Get(ctx context.Context, userID int64) (*model.Balance, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID)
	}
	return nil, domainErrors.ErrNotFound
}

// Set delegates to the provided function or echoes the written record.
func (s *BalanceRepositoryStub) Set(ctx context.Context, userID, amount int64) (*model.Balance, error) {
	if s.SetFn != nil {
		return s.SetFn(ctx, userID, amount)
	}
	return &model.Balance{UserID: userID, Amount: amount, UpdatedAt: time.Now()}, nil
}

// HistoryRepositoryStub allows tests to customize history log behaviour.
type HistoryRepositoryStub struct {
	AppendFn func(context.Context, int64, int64, model.EntryType) (*model.HistoryEntry, error)
	ListFn   func(context.Context, int64) ([]model.HistoryEntry, error)
	Entries  []model.HistoryEntry
}

// Append delegates to the provided function or fabricates an entry.
func (s *HistoryRepositoryStub) Append(ctx context.Context, userID, amount int64, entryType model.EntryType) (*model.HistoryEntry, error) {
	if s.AppendFn != nil {
		return s.AppendFn(ctx, userID, amount, entryType)
	}
	return &model.HistoryEntry{ID: 1, UserID: userID, Amount: amount, Type: entryType, RecordedAt: time.Now()}, nil
}

// ListByUser delegates to the provided function or returns preset entries.
func (s *HistoryRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.HistoryEntry, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return s.Entries, nil
}

// FactoryStub implements repository.Factory over the two stubs above.
type FactoryStub struct {
	BalancesStub  *BalanceRepositoryStub
	HistoriesStub *HistoryRepositoryStub
	HealthErr     error
	Closed        bool
}

// Balances returns the stubbed balance repository.
func (s *FactoryStub) Balances() repository.BalanceRepository {
	if s.BalancesStub == nil {
		s.BalancesStub = &BalanceRepositoryStub{}
	}
	return s.BalancesStub
}

// Histories returns the stubbed history repository.
func (s *FactoryStub) Histories() repository.HistoryRepository {
	if s.HistoriesStub == nil {
		s.HistoriesStub = &HistoryRepositoryStub{}
	}
	return s.HistoriesStub
}

// HealthCheck reports the configured health state.
func (s *FactoryStub) HealthCheck(ctx context.Context) error { return s.HealthErr }

// Close records that the factory was closed.
func (s *FactoryStub) Close() { s.Closed = true }
