package model

import "time"

// EntryType classifies a committed ledger mutation.
type EntryType string

const (
	EntryCharge EntryType = "CHARGE"
	EntryUse    EntryType = "USE"
)

// HistoryEntry is an immutable record of one committed charge or use.
// Amount holds the delta applied by that operation, not the running total.
type HistoryEntry struct {
	ID         int64
	UserID     int64
	Amount     int64
	Type       EntryType
	RecordedAt time.Time
}
