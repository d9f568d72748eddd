package memory

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/finbase/pointledger/internal/domain/errors"
	"github.com/finbase/pointledger/internal/domain/model"
	"github.com/finbase/pointledger/internal/domain/repository"
)

// Storage keeps balances and history in process memory: a balance table keyed
// by user id plus an append-only history log. Its mutex only protects the maps
// themselves; serializing read-modify-write cycles is the lock registry's job.
type Storage struct {
	mu          sync.RWMutex
	balances    map[int64]model.Balance
	histories   map[int64][]model.HistoryEntry
	nextEntryID int64
}

type balanceRepository struct {
	storage *Storage
}

type historyRepository struct {
	storage *Storage
}

// New creates empty in-memory storage.
func New() *Storage {
	return &Storage{
		balances:  make(map[int64]model.Balance),
		histories: make(map[int64][]model.HistoryEntry),
	}
}

// Balances returns the balance table adapter.
func (s *Storage) Balances() repository.BalanceRepository {
	return &balanceRepository{storage: s}
}

// Histories returns the history log adapter.
func (s *Storage) Histories() repository.HistoryRepository {
	return &historyRepository{storage: s}
}

// HealthCheck always succeeds for in-process storage.
func (s *Storage) HealthCheck(ctx context.Context) error {
	return nil
}

// Close is a no-op; the data lives only for the process lifetime.
func (s *Storage) Close() {}

// --- BalanceRepository implementation ---

func (r *balanceRepository) Get(ctx context.Context, userID int64) (*model.Balance, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	balance, ok := r.storage.balances[userID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	out := balance
	return &out, nil
}

func (r *balanceRepository) Set(ctx context.Context, userID, amount int64) (*model.Balance, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	balance := model.Balance{UserID: userID, Amount: amount, UpdatedAt: time.Now()}
	r.storage.balances[userID] = balance
	out := balance
	return &out, nil
}

// --- HistoryRepository implementation ---

func (r *historyRepository) Append(ctx context.Context, userID, amount int64, entryType model.EntryType) (*model.HistoryEntry, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	r.storage.nextEntryID++
	entry := model.HistoryEntry{
		ID:         r.storage.nextEntryID,
		UserID:     userID,
		Amount:     amount,
		Type:       entryType,
		RecordedAt: time.Now(),
	}
	r.storage.histories[userID] = append(r.storage.histories[userID], entry)
	out := entry
	return &out, nil
}

// ListByUser returns a copied snapshot so concurrent appends never corrupt a
// result the caller already started consuming.
func (r *historyRepository) ListByUser(ctx context.Context, userID int64) ([]model.HistoryEntry, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	entries := r.storage.histories[userID]
	out := make([]model.HistoryEntry, len(entries))
	copy(out, entries)
	return out, nil
}
