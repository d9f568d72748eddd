package repository

import (
	"context"

	"github.com/finbase/pointledger/internal/domain/model"
)

// HistoryRepository provides access to the append-only transaction log.
type HistoryRepository interface {
	// Append stores a new entry with a fresh unique id and timestamp.
	// Amount is the delta applied by the operation being recorded.
	Append(ctx context.Context, userID, amount int64, entryType model.EntryType) (*model.HistoryEntry, error)

	// ListByUser returns all entries for a user in commit order as a
	// materialized snapshot; an empty slice when none exist.
	ListByUser(ctx context.Context, userID int64) ([]model.HistoryEntry, error)
}
